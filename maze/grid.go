package maze

import "fmt"

// Side indexes a cell's four walls
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
	sideCount
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opposite returns the side facing s across a shared wall
func (s Side) Opposite() Side {
	return (s + 2) % sideCount
}

// Position is a (column, row) cell coordinate, (0,0) top-left
type Position struct {
	X, Y int
}

// Cell holds wall flags in Top/Right/Bottom/Left order and the generation visit mark
type Cell struct {
	Walls   [4]bool
	Visited bool
}

// HasWall reports whether side s is closed
func (c Cell) HasWall(s Side) bool {
	return c.Walls[s]
}

// View is the read-only maze geometry handed to the presentation layer
type View interface {
	Cols() int
	Rows() int
	CellSize() int
	HasWall(col, row int, s Side) bool
	InBounds(p Position) bool
}

// Grid is a rectangular array of cells addressed as cells[row][col]
type Grid struct {
	cells    [][]Cell
	cols     int
	rows     int
	cellSize int
}

// NewGrid sizes a fully walled grid to fit width x height with square cells of cellSize.
// A cellSize that does not fit either dimension yields a degenerate grid with no cells.
func NewGrid(width, height, cellSize int) *Grid {
	g := &Grid{cellSize: cellSize}
	if cellSize <= 0 || width < cellSize || height < cellSize {
		return g
	}

	g.cols = width / cellSize
	g.rows = height / cellSize

	g.cells = make([][]Cell, g.rows)
	for y := range g.cells {
		g.cells[y] = make([]Cell, g.cols)
		for x := range g.cells[y] {
			g.cells[y][x].Walls = [4]bool{true, true, true, true}
		}
	}
	return g
}

// Cols returns the number of cell columns
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cell rows
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the side length the grid was sized with
func (g *Grid) CellSize() int { return g.cellSize }

// Degenerate reports a grid with no playable cells
func (g *Grid) Degenerate() bool {
	return g.cols < 1 || g.rows < 1
}

// InBounds reports whether p addresses a cell of the grid
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// Cell returns a copy of the cell at (col, row); out-of-range access panics
func (g *Grid) Cell(col, row int) Cell {
	return *g.at(Position{col, row})
}

// HasWall reports whether the cell at (col, row) is closed on side s
func (g *Grid) HasWall(col, row int, s Side) bool {
	return g.at(Position{col, row}).Walls[s]
}

// Exit returns the bottom-right cell
func (g *Grid) Exit() Position {
	return Position{g.cols - 1, g.rows - 1}
}

func (g *Grid) at(p Position) *Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("maze: cell (%d,%d) outside %dx%d grid", p.X, p.Y, g.cols, g.rows))
	}
	return &g.cells[p.Y][p.X]
}

// removeWall opens the shared wall between two cardinally adjacent cells.
// Both sides are cleared together so neighbors always agree.
func (g *Grid) removeWall(a, b Position) {
	ca, cb := g.at(a), g.at(b)

	switch {
	case a.X == b.X && a.Y == b.Y+1:
		ca.Walls[SideTop] = false
		cb.Walls[SideBottom] = false
	case a.X == b.X && a.Y == b.Y-1:
		ca.Walls[SideBottom] = false
		cb.Walls[SideTop] = false
	case a.Y == b.Y && a.X == b.X+1:
		ca.Walls[SideLeft] = false
		cb.Walls[SideRight] = false
	case a.Y == b.Y && a.X == b.X-1:
		ca.Walls[SideRight] = false
		cb.Walls[SideLeft] = false
	default:
		panic(fmt.Sprintf("maze: cells (%d,%d) and (%d,%d) are not adjacent", a.X, a.Y, b.X, b.Y))
	}
}
