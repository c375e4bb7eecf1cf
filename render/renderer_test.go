package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSession(t *testing.T) (*engine.Session, *engine.ManualClock) {
	t.Helper()
	clock := engine.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s, err := engine.NewSession(engine.SessionConfig{
		Width:  900,
		Height: 850,
		Seed:   7,
		Clock:  clock,
	})
	require.NoError(t, err)
	return s, clock
}

func walkToExit(s *engine.Session) {
	path := maze.Solve(s.Maze(), s.Position(), s.Exit())
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		switch {
		case b.Y < a.Y:
			s.HandleDirection(maze.Up)
		case b.X > a.X:
			s.HandleDirection(maze.Right)
		case b.Y > a.Y:
			s.HandleDirection(maze.Down)
		default:
			s.HandleDirection(maze.Left)
		}
	}
}

// screenText returns every row of the screen as a string
func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// findBackground reports whether any cell carries the background color
func findBackground(screen tcell.Screen, color tcell.Color) bool {
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, style, _ := screen.GetContent(x, y)
			if _, bg, _ := style.Decompose(); bg == color {
				return true
			}
		}
	}
	return false
}

func TestDrawMenuAndTierSelect(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewRenderer(screen)
	s, _ := newTestSession(t)

	r.Draw(s)
	assert.Contains(t, screenText(screen), "L A B Y R I N T H")

	s.RequestStart()
	r.Draw(s)
	text := screenText(screen)
	assert.Contains(t, text, "Choose a difficulty")
	for _, tier := range difficulty.All() {
		assert.Contains(t, text, tier.Title())
	}
}

func TestDrawGame(t *testing.T) {
	screen := newTestScreen(t, 120, 60)
	r := NewRenderer(screen)
	s, clock := newTestSession(t)

	s.RequestStart()
	_, ok := s.NewGame(difficulty.Easy)
	require.True(t, ok)
	clock.Advance(12 * time.Second)

	r.Draw(s)

	text := screenText(screen)
	assert.Contains(t, text, "Easy  12s")
	assert.Contains(t, text, string(halfBlock))

	// Player and exit sit on odd raster rows, so they land in the lower half
	assert.True(t, findBackground(screen, RgbPlayer), "player marker drawn")
	assert.True(t, findBackground(screen, RgbExit), "exit marker drawn")
}

func TestDrawGameTooSmall(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	r := NewRenderer(screen)
	s, _ := newTestSession(t)

	s.RequestStart()
	s.NewGame(difficulty.Hard)
	r.Draw(s)

	text := screenText(screen)
	assert.Contains(t, text, "Terminal too small")
	assert.NotContains(t, text, string(halfBlock))
}

func TestDrawEndedAndScores(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	r := NewRenderer(screen)
	s, clock := newTestSession(t)

	s.RequestStart()
	s.NewGame(difficulty.Medium)
	clock.Advance(42*time.Second + 900*time.Millisecond)
	walkToExit(s)
	require.Equal(t, engine.PhaseEnded, s.Phase())

	r.Draw(s)
	assert.Contains(t, screenText(screen), "Medium maze completed in 42 seconds")

	s.RequestScores()
	r.Draw(s)
	text := screenText(screen)
	assert.Contains(t, text, "Best times")
	assert.Contains(t, text, "42s")
	assert.True(t, findBackground(screen, RgbHighlightBg), "active tier column highlighted")
}

func TestMazePixels(t *testing.T) {
	g := maze.NewGenerator(3).Build(300, 200, 100)
	px := MazePixels(g, maze.Position{}, g.Exit())

	require.Len(t, px, 2*g.Rows()+1)
	require.Len(t, px[0], 2*g.Cols()+1)
	assert.Equal(t, RgbPlayer, px[1][1])

	e := maze.RasterPoint(g.Exit())
	assert.Equal(t, RgbExit, px[e.Y][e.X])
	assert.Equal(t, RgbWall, px[0][0])

	w, h := MazeSize(g)
	assert.Equal(t, 2*g.Cols()+1, w)
	assert.Equal(t, g.Rows()+1+hudRows, h)
}

func TestScoreTable(t *testing.T) {
	ledger := score.NewLedger()
	ledger.Record(difficulty.Easy, 42)
	ledger.Record(difficulty.Easy, 17)
	ledger.Record(difficulty.Hard, 5)

	lines := strings.Split(ScoreTable(ledger, 3), "\n")

	// top border, header, header rule, three ranks, bottom border
	require.Len(t, lines, 7)
	assert.Contains(t, lines[1], "Easy")
	assert.Contains(t, lines[1], "Medium")
	assert.Contains(t, lines[1], "Hard")

	assert.Regexp(t, `1 .*17s.*-.*5s`, lines[3])
	assert.Regexp(t, `2 .*42s.*-.*-`, lines[4])
	assert.NotContains(t, lines[5], "s ")
}

func TestColumnSpan(t *testing.T) {
	lines := [][]rune{
		[]rune("┌───┬──────┐"),
		[]rune("│ # │ Easy │"),
	}
	start, end, ok := columnSpan(lines, "Easy")
	require.True(t, ok)
	assert.Equal(t, 5, start)
	assert.Equal(t, 11, end)

	_, _, ok = columnSpan(lines, "Hard")
	assert.False(t, ok)
}
