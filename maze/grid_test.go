package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		name              string
		width, height     int
		cellSize          int
		wantCols, wantRow int
		degenerate        bool
	}{
		{"easy play area", 900, 850, 100, 9, 8, false},
		{"medium play area", 900, 850, 50, 18, 17, false},
		{"hard play area", 900, 850, 25, 36, 34, false},
		{"exact fit", 300, 300, 100, 3, 3, false},
		{"single cell", 100, 100, 100, 1, 1, false},
		{"cell wider than area", 90, 850, 100, 0, 0, true},
		{"cell taller than area", 900, 99, 100, 0, 0, true},
		{"zero cell size", 900, 850, 0, 0, 0, true},
		{"negative cell size", 900, 850, -5, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.width, tc.height, tc.cellSize)
			assert.Equal(t, tc.wantCols, g.Cols())
			assert.Equal(t, tc.wantRow, g.Rows())
			assert.Equal(t, tc.cellSize, g.CellSize())
			assert.Equal(t, tc.degenerate, g.Degenerate())
		})
	}
}

func TestNewGridFullyWalled(t *testing.T) {
	g := NewGrid(400, 300, 100)
	require.Equal(t, 4, g.Cols())
	require.Equal(t, 3, g.Rows())

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c := g.Cell(x, y)
			assert.False(t, c.Visited, "cell (%d,%d) should start unvisited", x, y)
			for s := SideTop; s < sideCount; s++ {
				assert.True(t, c.HasWall(s), "cell (%d,%d) should have %s wall", x, y, s)
			}
		}
	}
	assert.Equal(t, 0, OpenPassages(g))
}

func TestCellOutOfRangePanics(t *testing.T) {
	g := NewGrid(300, 300, 100)

	for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		assert.Panics(t, func() { g.Cell(p.X, p.Y) }, "expected panic at %v", p)
	}
}

func TestRemoveWallPairs(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Position
		sideA  Side
		sideB  Side
		wantOK bool
	}{
		{"b above a", Position{1, 1}, Position{1, 0}, SideTop, SideBottom, true},
		{"b below a", Position{1, 1}, Position{1, 2}, SideBottom, SideTop, true},
		{"b left of a", Position{1, 1}, Position{0, 1}, SideLeft, SideRight, true},
		{"b right of a", Position{1, 1}, Position{2, 1}, SideRight, SideLeft, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(300, 300, 100)
			g.removeWall(tc.a, tc.b)

			assert.False(t, g.HasWall(tc.a.X, tc.a.Y, tc.sideA))
			assert.False(t, g.HasWall(tc.b.X, tc.b.Y, tc.sideB))
			assert.Equal(t, 1, OpenPassages(g))
			assertWallsPaired(t, g)
		})
	}
}

func TestRemoveWallRejectsNonAdjacent(t *testing.T) {
	g := NewGrid(300, 300, 100)
	assert.Panics(t, func() { g.removeWall(Position{0, 0}, Position{1, 1}) }, "diagonal pair")
	assert.Panics(t, func() { g.removeWall(Position{0, 0}, Position{2, 0}) }, "gap pair")
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideBottom, SideTop.Opposite())
	assert.Equal(t, SideLeft, SideRight.Opposite())
	assert.Equal(t, SideTop, SideBottom.Opposite())
	assert.Equal(t, SideRight, SideLeft.Opposite())
}

func TestExit(t *testing.T) {
	g := NewGrid(900, 850, 50)
	assert.Equal(t, Position{17, 16}, g.Exit())
}

// assertWallsPaired checks that every interior wall is reported identically by both neighbors
func assertWallsPaired(t *testing.T, g *Grid) {
	t.Helper()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if x+1 < g.Cols() {
				assert.Equal(t, g.HasWall(x, y, SideRight), g.HasWall(x+1, y, SideLeft),
					"horizontal pair (%d,%d)-(%d,%d) mismatched", x, y, x+1, y)
			}
			if y+1 < g.Rows() {
				assert.Equal(t, g.HasWall(x, y, SideBottom), g.HasWall(x, y+1, SideTop),
					"vertical pair (%d,%d)-(%d,%d) mismatched", x, y, x, y+1)
			}
		}
	}
}
