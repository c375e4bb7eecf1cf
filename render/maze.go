package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/maze"
)

// Each terminal row shows two raster rows: the upper half block takes the top
// color as foreground and the bottom color as background
const halfBlock = '▀'

// hudRows is the status line plus one spacer row
const hudRows = 2

// MazePixels colors the carve raster with the player and exit markers
func MazePixels(v maze.View, player, exit maze.Position) [][]tcell.Color {
	raster := maze.Carve(v)
	px := make([][]tcell.Color, len(raster))
	for y, row := range raster {
		px[y] = make([]tcell.Color, len(row))
		for x, wall := range row {
			if wall {
				px[y][x] = RgbWall
			} else {
				px[y][x] = RgbPassage
			}
		}
	}

	e := maze.RasterPoint(exit)
	px[e.Y][e.X] = RgbExit
	p := maze.RasterPoint(player)
	px[p.Y][p.X] = RgbPlayer
	return px
}

// MazeSize returns the terminal cells needed for a maze view, HUD included
func MazeSize(v maze.View) (width, height int) {
	return 2*v.Cols() + 1, v.Rows() + 1 + hudRows
}

func (r *Renderer) drawGame(s *engine.Session) {
	v := s.Maze()
	if v == nil {
		return
	}

	needW, needH := MazeSize(v)
	w, h := r.screen.Size()
	if needW > w || needH > h {
		r.drawTooSmall(needW, needH)
		return
	}

	ox := (w - needW) / 2
	oy := (h - needH) / 2

	r.drawHUD(s, ox, oy, needW)
	r.drawPixels(MazePixels(v, s.Position(), s.Exit()), ox, oy+hudRows)
}

func (r *Renderer) drawPixels(px [][]tcell.Color, ox, oy int) {
	for y := 0; y < len(px); y += 2 {
		for x := range px[y] {
			top := px[y][x]
			bottom := RgbBackground
			if y+1 < len(px) {
				bottom = px[y+1][x]
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			r.screen.SetContent(ox+x, oy+y/2, halfBlock, nil, style)
		}
	}
}

func (r *Renderer) drawHUD(s *engine.Session, ox, oy, width int) {
	status := fmt.Sprintf(" %s  %ds ", s.Tier().Title(), s.ElapsedSeconds())
	for x := 0; x < width; x++ {
		r.screen.SetContent(ox+x, oy, ' ', nil, styleStatus)
	}
	r.drawText(ox, oy, status, styleStatus)
}
