package maze

import (
	"math/rand"
	"time"
)

// Generator carves perfect mazes with an iterative recursive backtracker.
// Each generator owns its random source; equal seeds produce equal mazes.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// NewGenerator creates a generator; seed 0 picks a wall-clock seed
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the random source was created with
func (gen *Generator) Seed() int64 {
	return gen.seed
}

// neighborDirs is the enumeration order for candidate neighbors
var neighborDirs = [4]Direction{Up, Right, Down, Left}

// Generate turns a fully walled grid into a spanning tree of passages starting at (0,0).
// Degenerate grids are left untouched.
func (gen *Generator) Generate(g *Grid) {
	if g.Degenerate() {
		return
	}

	curr := Position{0, 0}
	g.at(curr).Visited = true

	// Stack depth is bounded by the cell count
	stack := make([]Position, 0, g.cols*g.rows)
	candidates := make([]Position, 0, 4)

	for {
		candidates = candidates[:0]
		for _, d := range neighborDirs {
			next := d.Step(curr)
			if g.InBounds(next) && !g.at(next).Visited {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) > 0 {
			next := candidates[gen.rng.Intn(len(candidates))]
			g.at(next).Visited = true
			g.removeWall(curr, next)
			stack = append(stack, curr)
			curr = next
			continue
		}

		if len(stack) == 0 {
			return
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}

// Build creates and carves a grid in one call
func (gen *Generator) Build(width, height, cellSize int) *Grid {
	g := NewGrid(width, height, cellSize)
	gen.Generate(g)
	return g
}
