package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbPassage    = tcell.NewRGBColor(26, 27, 38)    // Same as background
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbExit       = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbTitle      = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbText       = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbHint       = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbWarning    = tcell.NewRGBColor(255, 80, 80)   // Normal Red

	// Status bar
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status

	// Leaderboard column of the active tier
	RgbHighlightBg = tcell.NewRGBColor(60, 40, 0) // Very dark orange
)

var (
	styleBase      = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	styleTitle     = styleBase.Foreground(RgbTitle).Bold(true)
	styleHint      = styleBase.Foreground(RgbHint)
	styleWarning   = styleBase.Foreground(RgbWarning).Bold(true)
	styleStatus    = tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	styleHighlight = styleBase.Background(RgbHighlightBg).Foreground(RgbTitle)
)
