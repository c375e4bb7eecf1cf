package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyRight:  ActionRight,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			// vi motions
			'k': ActionUp,
			'l': ActionRight,
			'j': ActionDown,
			'h': ActionLeft,

			'w': ActionUp,
			'd': ActionRight,
			's': ActionDown,
			'a': ActionLeft,

			' ': ActionStart,
			'1': ActionEasy,
			'2': ActionMedium,
			'3': ActionHard,
			'r': ActionReplay,
			'v': ActionScores,
			'q': ActionQuit,
		},
	}
}

// Resolve returns the action bound to a key event, ActionNone if unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return kt.Keys[ev.Key()]
	}

	r := ev.Rune()
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	// Caps lock and shift fall back to the lowercase binding
	return kt.Runes[unicode.ToLower(r)]
}

// Merge overlays the bindings of other; ActionNone entries unbind
func (kt *KeyTable) Merge(other *KeyTable) {
	if other == nil {
		return
	}
	for k, a := range other.Keys {
		if a == ActionNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = a
	}
	for r, a := range other.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}
