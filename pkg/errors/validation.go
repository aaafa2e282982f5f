package errors

import (
	"strconv"
	"strings"
)

// ValidateSize checks that a grid size lies in [lo, hi].
func ValidateSize(n, lo, hi int) error {
	if n < lo || n > hi {
		return New(ErrCodeInvalidSize, "grid size %d out of range [%d, %d]", n, lo, hi)
	}
	return nil
}

// ParseCoord parses a "row,col" pair. Whitespace around either number is
// allowed; negative values are rejected.
func ParseCoord(s string) (row, col int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, New(ErrCodeInvalidCoord, "coordinate %q must be row,col", s)
	}
	row, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, Wrap(ErrCodeInvalidCoord, err, "coordinate %q: bad row", s)
	}
	col, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, Wrap(ErrCodeInvalidCoord, err, "coordinate %q: bad column", s)
	}
	if row < 0 || col < 0 {
		return 0, 0, New(ErrCodeInvalidCoord, "coordinate %q must not be negative", s)
	}
	return row, col, nil
}

// ValidateCoord checks that (row, col) lies on a size×size board.
func ValidateCoord(row, col, size int) error {
	if row < 0 || row >= size || col < 0 || col >= size {
		return New(ErrCodeInvalidCoord, "coordinate %d,%d outside %dx%d grid", row, col, size, size)
	}
	return nil
}
