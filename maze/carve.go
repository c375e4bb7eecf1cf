package maze

// Raster cell values
const (
	Wall    = true
	Passage = false
)

// Carve rasterizes a view into a (2*rows+1) x (2*cols+1) wall/passage grid.
// Cell (c, r) sits at raster (2c+1, 2r+1); the odd/even slots between cells hold walls.
func Carve(v View) [][]bool {
	rows, cols := 2*v.Rows()+1, 2*v.Cols()+1

	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
		for j := range grid[i] {
			grid[i][j] = Wall
		}
	}

	for y := 0; y < v.Rows(); y++ {
		for x := 0; x < v.Cols(); x++ {
			rx, ry := 2*x+1, 2*y+1
			grid[ry][rx] = Passage
			if !v.HasWall(x, y, SideRight) {
				grid[ry][rx+1] = Passage
			}
			if !v.HasWall(x, y, SideBottom) {
				grid[ry+1][rx] = Passage
			}
			// Top and left are covered by the neighbor, but the outer border
			// can only be opened from this side
			if !v.HasWall(x, y, SideTop) {
				grid[ry-1][rx] = Passage
			}
			if !v.HasWall(x, y, SideLeft) {
				grid[ry][rx-1] = Passage
			}
		}
	}
	return grid
}

// RasterPoint maps a cell position to its raster coordinate
func RasterPoint(p Position) Position {
	return Position{2*p.X + 1, 2*p.Y + 1}
}
