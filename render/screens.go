package render

import (
	"fmt"

	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/lixenwraith/labyrinth/engine"
)

var menuLines = []string{
	"Find your way from the top-left corner to the exit.",
	"",
	"Move with the arrow keys, hjkl or wasd.",
}

func (r *Renderer) drawMenu() {
	_, h := r.screen.Size()
	top := h/2 - 4

	r.drawCentered(top, "L A B Y R I N T H", styleTitle)
	r.drawBlock(top+2, menuLines, styleBase)
	r.drawCentered(top+6, "[Enter] start    [q] quit", styleHint)
}

func (r *Renderer) drawTierSelect() {
	_, h := r.screen.Size()
	top := h/2 - 4

	r.drawCentered(top, "Choose a difficulty", styleTitle)
	for i, t := range difficulty.All() {
		r.drawCentered(top+2+i, tierLine(i+1, t), styleBase)
	}
	r.drawCentered(top+6, "[q] quit", styleHint)
}

func tierLine(key int, t difficulty.Tier) string {
	return fmt.Sprintf("[%d] %-6s  cell size %3d", key, t.Title(), t.CellSize())
}

func (r *Renderer) drawEnded(s *engine.Session) {
	_, h := r.screen.Size()
	top := h/2 - 3

	r.drawCentered(top, "Maze completed!", styleTitle)
	r.drawCentered(top+2, completedLine(s.Tier(), s.ElapsedSeconds()), styleBase)
	r.drawCentered(top+4, "[r] play again    [v] scores    [q] quit", styleHint)
}

func completedLine(t difficulty.Tier, seconds int) string {
	unit := "seconds"
	if seconds == 1 {
		unit = "second"
	}
	return fmt.Sprintf("%s maze completed in %d %s", t.Title(), seconds, unit)
}

// drawTooSmall replaces a frame that cannot fit the terminal
func (r *Renderer) drawTooSmall(needW, needH int) {
	w, h := r.screen.Size()
	r.drawCentered(h/2-1, "Terminal too small", styleWarning)
	r.drawCentered(h/2+1, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, w, h), styleHint)
}
