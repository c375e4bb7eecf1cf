package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratePerfectMaze verifies the spanning tree property over several sizes and seeds
func TestGeneratePerfectMaze(t *testing.T) {
	sizes := []struct {
		width, height, cellSize int
	}{
		{300, 300, 100},
		{900, 850, 100},
		{900, 850, 50},
		{900, 850, 25},
		{100, 700, 100}, // single column
		{700, 100, 100}, // single row
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g := NewGenerator(seed).Build(sz.width, sz.height, sz.cellSize)
			cells := g.Cols() * g.Rows()

			// A connected graph with cells-1 edges is a tree
			assert.Equal(t, cells-1, OpenPassages(g), "seed %d size %dx%d", seed, g.Cols(), g.Rows())
			assert.Len(t, Reachable(g, Position{0, 0}), cells, "seed %d size %dx%d", seed, g.Cols(), g.Rows())
			assertWallsPaired(t, g)
		}
	}
	t.Logf("✓ Spanning tree verified for %d grid sizes", len(sizes))
}

func TestGenerateThreeByThree(t *testing.T) {
	g := NewGenerator(42).Build(300, 300, 100)
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 3, g.Rows())

	assert.Equal(t, 8, OpenPassages(g), "3x3 maze should remove exactly 8 walls")

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			reach := Reachable(g, Position{x, y})
			assert.Len(t, reach, 9, "all cells reachable from (%d,%d)", x, y)
		}
	}
}

func TestGenerateVisitsEveryCell(t *testing.T) {
	g := NewGenerator(7).Build(900, 850, 25)

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			assert.True(t, g.Cell(x, y).Visited, "cell (%d,%d) not visited", x, y)
		}
	}
}

func TestGenerateKeepsOuterBorder(t *testing.T) {
	g := NewGenerator(3).Build(900, 850, 50)

	for x := 0; x < g.Cols(); x++ {
		assert.True(t, g.HasWall(x, 0, SideTop))
		assert.True(t, g.HasWall(x, g.Rows()-1, SideBottom))
	}
	for y := 0; y < g.Rows(); y++ {
		assert.True(t, g.HasWall(0, y, SideLeft))
		assert.True(t, g.HasWall(g.Cols()-1, y, SideRight))
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := NewGenerator(1234).Build(900, 850, 50)
	b := NewGenerator(1234).Build(900, 850, 50)
	c := NewGenerator(4321).Build(900, 850, 50)

	assert.Equal(t, Carve(a), Carve(b), "same seed should carve the same maze")
	assert.NotEqual(t, Carve(a), Carve(c), "different seeds should differ on an 18x17 grid")
}

func TestGenerateDegenerateGrid(t *testing.T) {
	g := NewGrid(50, 50, 100)
	require.True(t, g.Degenerate())

	assert.NotPanics(t, func() { NewGenerator(1).Generate(g) })
	assert.Equal(t, 0, OpenPassages(g))
}

func TestGenerateSingleCell(t *testing.T) {
	g := NewGenerator(1).Build(100, 100, 100)
	require.Equal(t, 1, g.Cols()*g.Rows())

	assert.Equal(t, 0, OpenPassages(g))
	assert.True(t, g.Cell(0, 0).Visited)
}

func TestNewGeneratorZeroSeed(t *testing.T) {
	gen := NewGenerator(0)
	assert.NotZero(t, gen.Seed(), "zero seed should be replaced with a clock seed")
}
