package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilesnake/internal/config"
	"github.com/vovakirdan/tilesnake/internal/gba"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		button gba.Key
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, gba.KeyUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, gba.KeyDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, gba.KeyLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, gba.KeyRight, false},
		{"w", runeKey("w"), gba.KeyUp, false},
		{"a", runeKey("a"), gba.KeyLeft, false},
		{"j", runeKey("j"), gba.KeyDown, false},
		{"l", runeKey("l"), gba.KeyRight, false},
		{"q", runeKey("q"), 0, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, 0, true},
		{"unbound", runeKey("x"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			button, quit := km.MapKey(tt.msg)
			if button != tt.button || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), button, quit, tt.button, tt.quit)
			}
		})
	}
}

func TestMapKeyCustomBindings(t *testing.T) {
	keys := config.Default().Keys
	keys.Up = []string{"i"}
	km := NewKeyMap(keys)

	if button, _ := km.MapKey(runeKey("i")); button != gba.KeyUp {
		t.Errorf("custom up key mapped to %v", button)
	}
	if button, _ := km.MapKey(runeKey("w")); button != 0 {
		t.Errorf("replaced key still mapped to %v", button)
	}
}

func TestHelpBindings(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)
	if got := len(km.ShortHelp()); got != 5 {
		t.Errorf("short help has %d bindings, want 5", got)
	}
	if got := km.Up.Help().Key; got != "↑" {
		t.Errorf("up help key = %q, want ↑", got)
	}
	if got := km.Quit.Help().Key; got != "q" {
		t.Errorf("quit help key = %q, want q", got)
	}
}
