package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/labyrinth/engine"
)

// Renderer draws one frame of the session per call
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer on an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and draws the view for the current phase
func (r *Renderer) Draw(s *engine.Session) {
	r.screen.SetStyle(styleBase)
	r.screen.Clear()

	switch s.Phase() {
	case engine.PhaseMenu:
		r.drawMenu()
	case engine.PhaseTierSelect:
		r.drawTierSelect()
	case engine.PhasePlaying:
		r.drawGame(s)
	case engine.PhaseEnded:
		r.drawEnded(s)
	case engine.PhaseScores:
		r.drawScores(s)
	}

	r.screen.Show()
}

// drawText writes a single line clipped to the screen width
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// drawCentered writes a line centered horizontally
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-len([]rune(text)))/2, y, text, style)
}

// drawBlock writes lines centered as a block starting at row y
func (r *Renderer) drawBlock(y int, lines []string, style tcell.Style) {
	for i, line := range lines {
		r.drawCentered(y+i, line, style)
	}
}
