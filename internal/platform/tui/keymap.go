package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilesnake/internal/config"
	"github.com/vovakirdan/tilesnake/internal/console"
	"github.com/vovakirdan/tilesnake/internal/games/snake"
	"github.com/vovakirdan/tilesnake/internal/gba"
)

// KeyMap binds terminal keys to pad buttons.
// It implements help.KeyMap so the bindings can be listed under the playfield.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys(cfg.Up...), key.WithHelp(helpKey(cfg.Up, "↑"), "up")),
		Down:       key.NewBinding(key.WithKeys(cfg.Down...), key.WithHelp(helpKey(cfg.Down, "↓"), "down")),
		Left:       key.NewBinding(key.WithKeys(cfg.Left...), key.WithHelp(helpKey(cfg.Left, "←"), "left")),
		Right:      key.NewBinding(key.WithKeys(cfg.Right...), key.WithHelp(helpKey(cfg.Right, "→"), "right")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys(cfg.Quit...), key.WithHelp(helpKey(cfg.Quit, "q"), "quit")),
	}
}

// helpKey returns the label shown for a binding.
func helpKey(keys []string, fallback string) string {
	if len(keys) == 0 {
		return fallback
	}
	switch keys[0] {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return keys[0]
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to a pad button.
// Returns zero when the key is unbound, and isQuit for quit requests.
func (k KeyMap) MapKey(msg tea.KeyMsg) (button gba.Key, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return 0, true
	case key.Matches(msg, k.Up):
		return console.KeyFor(snake.DirUp), false
	case key.Matches(msg, k.Down):
		return console.KeyFor(snake.DirDown), false
	case key.Matches(msg, k.Left):
		return console.KeyFor(snake.DirLeft), false
	case key.Matches(msg, k.Right):
		return console.KeyFor(snake.DirRight), false
	}
	return 0, false
}
