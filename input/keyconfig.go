package input

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames is the lowercase reverse of tcell.KeyNames
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the on-disk layout:
//
//	[keys]
//	up = "move_up"
//	esc = "none"
//
//	[runes]
//	w = "move_up"
//	space = "start"
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(raw.Keys)),
		Runes: make(map[rune]Action, len(raw.Runes)),
	}

	for name, actionName := range raw.Keys {
		k, ok := keyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("[keys] %q: %w", name, ErrUnknownKey)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", name, err)
		}
		kt.Keys[k] = a
	}

	for name, actionName := range raw.Runes {
		r, err := resolveRune(name)
		if err != nil {
			return nil, fmt.Errorf("[runes] %q: %w", name, err)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[runes] %q: %w", name, err)
		}
		kt.Runes[r] = a
	}

	return kt, nil
}

// LoadKeyTable returns the defaults merged with the keymap file at path, if any
func LoadKeyTable(path string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	if path == "" {
		return kt, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	overrides, err := LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	kt.Merge(overrides)
	return kt, nil
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return ActionNone, fmt.Errorf("%w %q", ErrUnknownAction, name)
	}
	return a, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: rune binding must be a single character", ErrUnknownKey)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
