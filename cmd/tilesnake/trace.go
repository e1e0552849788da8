package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilesnake/internal/config"
	"github.com/vovakirdan/tilesnake/internal/console"
	"github.com/vovakirdan/tilesnake/internal/games/snake"
)

var (
	flagTicks  int
	flagKeys   string
	flagEvery  int
	flagBoard  bool
	flagEvents bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run headless ticks and print snapshots",
	Long: `Run the console without a display or clock and print its state.

Keys are scripted as tick:direction pairs. The key is pressed before that
tick runs and released afterwards. Ticks are numbered from 1.

Examples:
  tilesnake trace --ticks 20
  tilesnake trace --ticks 200 --keys 3:left,40:down,41:right --every 10
  tilesnake trace --ticks 11 --events --board`,
	Args: cobra.NoArgs,
	RunE: runTraceCmd,
}

func init() {
	traceCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run")
	traceCmd.Flags().StringVar(&flagKeys, "keys", "", "Scripted presses, e.g. 3:left,10:up")
	traceCmd.Flags().IntVar(&flagEvery, "every", 0, "Print a snapshot every N ticks (0 = final only)")
	traceCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the board with each snapshot")
	traceCmd.Flags().BoolVar(&flagEvents, "events", false, "Print ticks that spawned, ate or collided")
}

// traceOptions control a headless run.
type traceOptions struct {
	Ticks  int
	Script map[int]snake.Direction
	Every  int
	Board  bool
	Events bool
}

func runTraceCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	script, err := parseScript(flagKeys)
	if err != nil {
		return err
	}
	opts := traceOptions{
		Ticks:  flagTicks,
		Script: script,
		Every:  flagEvery,
		Board:  flagBoard,
		Events: flagEvents,
	}
	return runTrace(cmd.OutOrStdout(), cfg, opts)
}

// runTrace steps a fresh console and writes snapshots to w.
func runTrace(w io.Writer, cfg config.Config, opts traceOptions) error {
	if opts.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", opts.Ticks)
	}

	c := console.New(cfg.Console, newLogger(os.Stderr, cfg, "tilesnake-trace"))
	emit := func() {
		snap := c.Snapshot()
		fmt.Fprintln(w, snap)
		if opts.Board {
			fmt.Fprintln(w, snap.Board())
		}
	}

	for tick := 1; tick <= opts.Ticks; tick++ {
		if dir, ok := opts.Script[tick]; ok {
			c.Keypad().Tap(console.KeyFor(dir))
		}
		ev := c.Step()
		if opts.Events && (ev.FoodSpawned || ev.Ate || ev.Collided) {
			fmt.Fprintf(w, "tick %d: spawned=%t ate=%t collided=%t\n", tick, ev.FoodSpawned, ev.Ate, ev.Collided)
		}
		if opts.Every > 0 && tick%opts.Every == 0 && tick != opts.Ticks {
			emit()
		}
	}
	emit()
	return nil
}

// parseScript parses "tick:dir,tick:dir" into presses keyed by tick.
func parseScript(s string) (map[int]snake.Direction, error) {
	script := make(map[int]snake.Direction)
	if strings.TrimSpace(s) == "" {
		return script, nil
	}

	for _, item := range strings.Split(s, ",") {
		tickStr, dirStr, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("key script %q: want tick:direction", item)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("key script %q: tick must be a positive number", item)
		}
		dir, err := parseDirection(dirStr)
		if err != nil {
			return nil, fmt.Errorf("key script %q: %w", item, err)
		}
		script[tick] = dir
	}
	return script, nil
}

// parseDirection accepts a direction name or its first letter.
func parseDirection(s string) (snake.Direction, error) {
	switch strings.ToLower(s) {
	case "up", "u":
		return snake.DirUp, nil
	case "down", "d":
		return snake.DirDown, nil
	case "left", "l":
		return snake.DirLeft, nil
	case "right", "r":
		return snake.DirRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
