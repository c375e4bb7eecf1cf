package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/lixenwraith/labyrinth/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== PERFECT MAZE GENERATOR ===")

		w := getInt(reader, fmt.Sprintf("Play width (default %d): ", config.DefaultPlayWidth), config.DefaultPlayWidth)
		h := getInt(reader, fmt.Sprintf("Play height (default %d): ", config.DefaultPlayHeight), config.DefaultPlayHeight)

		cellSize := difficulty.Easy.CellSize()
		fmt.Print("Tier [easy/medium/hard] or cell size (default easy): ")
		tierStr, _ := reader.ReadString('\n')
		tierStr = strings.TrimSpace(tierStr)
		if tierStr != "" {
			if t, err := difficulty.Parse(tierStr); err == nil {
				cellSize = t.CellSize()
			} else if n, err := strconv.Atoi(tierStr); err == nil && n > 0 {
				cellSize = n
			} else {
				fmt.Printf("Unknown tier %q, using easy\n", tierStr)
			}
		}

		seed := int64(getInt(reader, "Seed (default time based): ", 0))

		gen := maze.NewGenerator(seed)
		fmt.Println("\nGenerating...")
		startT := time.Now()
		grid := gen.Build(w, h, cellSize)
		dur := time.Since(startT)

		fmt.Printf("Done in %v (seed %d)\n", dur, gen.Seed())
		if grid.Degenerate() {
			fmt.Printf("Status: Degenerate (cell size %d does not fit %dx%d)\n", cellSize, w, h)
		} else {
			fmt.Printf("Grid Dimensions: %dx%d cells, %d passages\n", grid.Cols(), grid.Rows(), maze.OpenPassages(grid))

			path := maze.Solve(grid, maze.Position{}, grid.Exit())
			if path != nil {
				fmt.Printf("Solution Path Length: %d steps\n", len(path)-1)
			} else {
				fmt.Println("Status: Unsolvable")
			}

			draw(os.Stdout, grid, path)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(w io.Writer, v maze.View, path []maze.Position) {
	raster := maze.Carve(v)

	pathMap := make(map[maze.Position]bool, 2*len(path))
	for i, p := range path {
		pathMap[maze.RasterPoint(p)] = true
		// Mark the opening between consecutive cells as well
		if i > 0 {
			a, b := maze.RasterPoint(path[i-1]), maze.RasterPoint(p)
			pathMap[maze.Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}] = true
		}
	}

	start := maze.RasterPoint(maze.Position{})
	end := maze.RasterPoint(maze.Position{X: v.Cols() - 1, Y: v.Rows() - 1})

	var b strings.Builder
	for y, row := range raster {
		for x, isWall := range row {
			p := maze.Position{X: x, Y: y}

			switch {
			case p == start:
				b.WriteString("S")
			case p == end:
				b.WriteString("E")
			case isWall:
				b.WriteString("█")
			case pathMap[p]:
				b.WriteString("•")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
