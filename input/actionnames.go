package input

import (
	"fmt"

	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/lixenwraith/labyrinth/maze"
)

// Action is a presentation-independent player command
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionRight
	ActionDown
	ActionLeft
	ActionStart
	ActionEasy
	ActionMedium
	ActionHard
	ActionReplay
	ActionScores
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by keymap config loader to resolve TOML action strings
var actionRegistry map[string]Action

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]Action {
	return map[string]Action{
		// Unbind sentinel
		"none": ActionNone,

		"move_up":    ActionUp,
		"move_right": ActionRight,
		"move_down":  ActionDown,
		"move_left":  ActionLeft,

		"start":       ActionStart,
		"tier_easy":   ActionEasy,
		"tier_medium": ActionMedium,
		"tier_hard":   ActionHard,
		"replay":      ActionReplay,
		"scores":      ActionScores,
		"quit":        ActionQuit,
	}
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Direction returns the maze direction of a movement action
func (a Action) Direction() (maze.Direction, bool) {
	switch a {
	case ActionUp:
		return maze.Up, true
	case ActionRight:
		return maze.Right, true
	case ActionDown:
		return maze.Down, true
	case ActionLeft:
		return maze.Left, true
	}
	return 0, false
}

// Tier returns the difficulty chosen by a tier action
func (a Action) Tier() (difficulty.Tier, bool) {
	switch a {
	case ActionEasy:
		return difficulty.Easy, true
	case ActionMedium:
		return difficulty.Medium, true
	case ActionHard:
		return difficulty.Hard, true
	}
	return 0, false
}
