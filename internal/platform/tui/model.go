package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilesnake/internal/config"
	"github.com/vovakirdan/tilesnake/internal/console"
	"github.com/vovakirdan/tilesnake/internal/core"
	"github.com/vovakirdan/tilesnake/internal/gba"
)

// Model is the Bubble Tea model hosting one console.
// Each tick message is one vertical blank; the console steps the game every
// FramesPerTick of them.
type Model struct {
	console  *console.Console
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	display  config.DisplayConfig
	fps      int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with its own console.
func NewModel(cfg config.Config, logger *log.Logger) Model {
	return Model{
		console: console.New(cfg.Console, logger),
		screen:  core.NewScreen(PlayfieldWidth, PlayfieldHeight),
		keys:    NewKeyMap(cfg.Keys),
		help:    help.New(),
		display: cfg.Display,
		fps:     cfg.Console.FPS,
	}
}

// Playfield size in terminal cells.
const (
	PlayfieldWidth  = gba.ScreenTilesW * gba.CellsPerTile
	PlayfieldHeight = gba.ScreenTilesH

	// Smallest terminal that fits the bordered playfield.
	MinWidth  = PlayfieldWidth + 2
	MinHeight = PlayfieldHeight + 2
)

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.console.Frame()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
// Terminals report presses only, so every press is a tap held until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	button, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if button != 0 {
		m.console.Keypad().Tap(button)
	}
	return m, nil
}

// saveScreenshot writes the current board to ~/.tilesnake/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tilesnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("tilesnake_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.console.Snapshot().Board()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < MinWidth || m.height < MinHeight) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", MinWidth, MinHeight, m.width, m.height)
	}

	m.screen.Clear()
	m.console.Render(m.screen, 0, 0)
	board := RenderScreen(m.screen)
	if m.display.Border {
		board = borderStyle.Render(board)
	}

	parts := []string{board}
	if m.display.ShowStatus {
		parts = append(parts, statusStyle.Render(m.status()))
	}
	if m.display.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// status returns the one-line game summary.
func (m Model) status() string {
	g := m.console.Game()
	return fmt.Sprintf("length %d/%d  food %d  heading %s  resets %d",
		g.Length(), g.TargetLength(), g.FoodCount(), g.Direction(), g.Resets())
}

// Console returns the hosted console.
func (m Model) Console() *console.Console {
	return m.console
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.Config, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
