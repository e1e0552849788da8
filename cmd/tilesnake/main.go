// tilesnake runs the tile-grid snake game on an emulated handheld console.
//
// Usage:
//
//	tilesnake play           - Play in this terminal
//	tilesnake serve          - Start SSH server for remote play
//	tilesnake trace          - Run headless ticks and print the state
//	tilesnake config         - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Configuration file (default: search ~/.tilesnake, ./configs)
//	--seed <value>  - Food generator seed
//	--fps <rate>    - Vertical-blank rate
//	--speed <name>  - Speed preset: slow, normal, fast, turbo
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilesnake/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   uint32
	flagFPS    int
	flagSpeed  string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilesnake",
	Short: "Tile-grid snake on an emulated handheld console",
	Long: `tilesnake plays a 30x20 tile-map snake game. The game core writes
straight into the tile map of an emulated console, which is decoded and drawn
in your terminal.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  trace    - Run headless ticks and print snapshots
  config   - Print the effective configuration

Examples:
  tilesnake play
  tilesnake play --speed fast
  tilesnake serve --ssh :2222
  tilesnake trace --ticks 50 --keys 3:left,10:down --board`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "Food generator seed (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Vertical-blank rate (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, turbo")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Console.Seed = flagSeed
	}
	if flags.Changed("fps") {
		cfg.Console.FPS = flagFPS
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return cfg, err
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger.
func newLogger(w io.Writer, cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
