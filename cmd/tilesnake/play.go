package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilesnake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the console in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Ctrl+S           - Save a text screenshot to ~/.tilesnake/screenshots
  Q/Ctrl+C         - Quit

Running into a wall or the snake clears the board and starts over.

Examples:
  tilesnake play
  tilesnake play --seed 42 --speed slow
  tilesnake play --debug --log-file /tmp/tilesnake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.MinWidth || h < tui.MinHeight {
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, tui.MinWidth, tui.MinHeight)
		}
	}

	// The alternate screen owns stdout and stderr, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}

	return tui.Run(cfg, newLogger(logOut, cfg, "tilesnake"))
}
