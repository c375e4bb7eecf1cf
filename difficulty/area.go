package difficulty

import (
	"errors"
	"fmt"
)

// ErrDegenerateArea reports a play area that cannot hold one cell of some tier
var ErrDegenerateArea = errors.New("play area too small for tier cell size")

// CheckPlayArea verifies every tier yields at least one column and one row
func CheckPlayArea(width, height int) error {
	for _, t := range All() {
		size := t.CellSize()
		if width/size < 1 || height/size < 1 {
			return fmt.Errorf("%w: %s tier needs %dx%d, area is %dx%d",
				ErrDegenerateArea, t, size, size, width, height)
		}
	}
	return nil
}
