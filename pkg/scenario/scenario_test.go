package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathfind"
)

const walled = `; wall with a gap at the bottom
S.#.E
..#..

..#..
..#..
.....
`

func TestParse(t *testing.T) {
	g, err := ParseString(walled)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Size())
	assert.Equal(t, 4, g.Count(grid.Obstacle))
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	end, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, 4, end)
}

func TestParseReadsMarksAsEmpty(t *testing.T) {
	g, err := ParseString("S*o\n.o.\n..E\n")
	require.NoError(t, err)
	assert.Equal(t, 7, g.Count(grid.Empty))
	assert.Equal(t, 0, g.Count(grid.Visited))
	assert.Equal(t, 0, g.Count(grid.Path))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
		msg  string
	}{
		{"empty", "\n; only a comment\n", errors.ErrCodeInvalidScenario, "empty"},
		{"not square", "S..\n..\n..E\n", errors.ErrCodeInvalidScenario, "line 2"},
		{"bad char", "S..\n.x.\n..E\n", errors.ErrCodeInvalidScenario, "column 2"},
		{"two starts", "S..\n.S.\n..E\n", errors.ErrCodeInvalidScenario, "second start"},
		{"two ends", "S.E\n...\n..E\n", errors.ErrCodeInvalidScenario, "second end"},
		{"too large", strings.Repeat(".\n", MaxSize+1), errors.ErrCodeInvalidSize, "max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFormatAfterRun(t *testing.T) {
	g, err := ParseString("S....\n.....\n.....\n.....\n....E\n")
	require.NoError(t, err)
	_, err = pathfind.Run(g)
	require.NoError(t, err)

	out := Format(g)
	assert.Equal(t, 7, strings.Count(out, string(CharPath)))
	assert.Equal(t, 1, strings.Count(out, string(CharStart)))
	assert.Equal(t, 1, strings.Count(out, string(CharEnd)))
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)

	// A solved map reads back as the unsolved board.
	again, err := ParseString(out)
	require.NoError(t, err)
	g.ClearTransient()
	assert.Equal(t, g.Snapshot(), again.Snapshot())
}

func TestWrite(t *testing.T) {
	g := grid.New(2)
	g.PlaceAt(0, 1, grid.ModeObstacle)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	assert.Equal(t, ".#\n..\n", buf.String())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(walled), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Size())

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}
