package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
Tab = "scores"
esc = "none"

[runes]
space = "replay"
x = "QUIT"
`)

	kt, err := LoadKeyConfig(data)
	require.NoError(t, err)

	assert.Equal(t, ActionScores, kt.Keys[tcell.KeyTab])
	assert.Equal(t, ActionNone, kt.Keys[tcell.KeyEscape])
	assert.Equal(t, ActionReplay, kt.Runes[' '])
	assert.Equal(t, ActionQuit, kt.Runes['x'])
	assert.Len(t, kt.Runes, 2)
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown action", "[runes]\nx = \"teleport\"\n", ErrUnknownAction},
		{"unknown key name", "[keys]\nhyperkey = \"quit\"\n", ErrUnknownKey},
		{"multi-char rune", "[runes]\nxy = \"quit\"\n", ErrUnknownKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tc.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}

	_, err := LoadKeyConfig([]byte("[runes\nbroken"))
	assert.Error(t, err, "malformed TOML")
}

func TestLoadKeyTable(t *testing.T) {
	kt, err := LoadKeyTable("")
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyTable(), kt)

	path := filepath.Join(t.TempDir(), "keys.toml")
	require.NoError(t, os.WriteFile(path, []byte("[runes]\nq = \"none\"\nz = \"quit\"\n"), 0o644))

	kt, err = LoadKeyTable(path)
	require.NoError(t, err)
	assert.NotContains(t, kt.Runes, 'q')
	assert.Equal(t, ActionQuit, kt.Runes['z'])
	assert.Equal(t, ActionUp, kt.Keys[tcell.KeyUp])

	_, err = LoadKeyTable(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
