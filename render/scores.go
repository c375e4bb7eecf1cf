package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/score"
)

// ScoreboardSize is the number of ranks shown per tier
const ScoreboardSize = 10

const emptySlot = "-"

// The table is blitted into tcell cell by cell, so it carries no ANSI styling
var cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

// ScoreTable renders the top durations of every tier side by side
func ScoreTable(ledger *score.Ledger, n int) string {
	tiers := difficulty.All()
	cols := make([][]int, len(tiers))
	for i, t := range tiers {
		cols[i] = ledger.TopSeconds(t, n)
	}

	rows := make([][]string, 0, n)
	for rank := 0; rank < n; rank++ {
		row := []string{strconv.Itoa(rank + 1)}
		for _, col := range cols {
			if rank < len(col) {
				row = append(row, strconv.Itoa(col[rank])+"s")
			} else {
				row = append(row, emptySlot)
			}
		}
		rows = append(rows, row)
	}

	headers := []string{"#"}
	for _, t := range tiers {
		headers = append(headers, t.Title())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})

	return t.Render()
}

// columnSpan returns the rune range of a header cell in the table's first content line
func columnSpan(lines [][]rune, header string) (start, end int, ok bool) {
	for _, line := range lines {
		idx := strings.Index(string(line), header)
		if idx < 0 {
			continue
		}
		start = len([]rune(string(line)[:idx]))
		// Widen to the enclosing separators
		for start > 0 && line[start-1] != '│' {
			start--
		}
		end = start
		for end < len(line) && line[end] != '│' {
			end++
		}
		return start, end, true
	}
	return 0, 0, false
}

func (r *Renderer) drawScores(s *engine.Session) {
	lines := strings.Split(ScoreTable(s.Ledger(), ScoreboardSize), "\n")
	runes := make([][]rune, len(lines))
	width := 0
	for i, l := range lines {
		runes[i] = []rune(l)
		width = max(width, len(runes[i]))
	}

	w, h := r.screen.Size()
	needH := len(lines) + 4
	if width > w || needH > h {
		r.drawTooSmall(width, needH)
		return
	}

	top := (h - needH) / 2
	ox := (w - width) / 2

	r.drawCentered(top, "Best times", styleTitle)

	hs, he, found := columnSpan(runes, s.Tier().Title())
	for y, line := range runes {
		for x, ch := range line {
			style := styleBase
			if found && x >= hs && x < he && y > 0 && y < len(runes)-1 {
				style = styleHighlight
			}
			r.screen.SetContent(ox+x, top+2+y, ch, nil, style)
		}
	}

	r.drawCentered(top+2+len(lines)+1, "[r] play again    [q] quit", styleHint)
}
