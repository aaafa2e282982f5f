package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// MaxSize is the largest board ReadJSON accepts.
const MaxSize = 200

// ReadJSON decodes a JSON board from r. Obstacles, start and end are placed;
// result fields are ignored. Obstacles listed twice are placed once.
//
// ReadJSON returns an error if the JSON is malformed, the size is outside
// [1, MaxSize], a coordinate is off the board, start and end coincide, or an
// obstacle sits on an endpoint. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*grid.Grid, error) {
	var data board
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode board")
	}
	if err := errors.ValidateSize(data.Size, 1, MaxSize); err != nil {
		return nil, err
	}

	g := grid.New(data.Size)
	place := func(field string, c Coord, mode grid.Mode) error {
		if err := errors.ValidateCoord(c[0], c[1], data.Size); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "%s", field)
		}
		if !g.PlaceAt(c[0], c[1], mode) {
			return errors.New(errors.ErrCodeInvalidScenario, "%s %d,%d overlaps an endpoint", field, c[0], c[1])
		}
		return nil
	}
	if data.Start != nil {
		if err := place("start", *data.Start, grid.ModeStart); err != nil {
			return nil, err
		}
	}
	if data.End != nil {
		if err := place("end", *data.End, grid.ModeEnd); err != nil {
			return nil, err
		}
	}
	for _, c := range data.Obstacles {
		if idx, ok := g.Index(c[0], c[1]); ok && g.State(idx) == grid.Obstacle {
			continue
		}
		if err := place("obstacle", c, grid.ModeObstacle); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ImportJSON reads a JSON board file at path. A missing file is reported
// with the FILE_NOT_FOUND code.
func ImportJSON(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "board %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
