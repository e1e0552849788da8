// Package console drives the snake core on the emulated hardware: it performs
// the one-time setup, samples keys and paces ticks on vertical blanks.
package console

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilesnake/internal/config"
	"github.com/vovakirdan/tilesnake/internal/core"
	"github.com/vovakirdan/tilesnake/internal/games/snake"
	"github.com/vovakirdan/tilesnake/internal/gba"
)

// Console owns one emulated machine and the game running on it.
// It is not safe for concurrent use; hosts drive it from a single goroutine.
type Console struct {
	cfg    config.ConsoleConfig
	hw     *gba.Hardware
	keys   *gba.KeyState
	game   *snake.Game
	logger *log.Logger
	frame  uint64
}

// New sets up the hardware, builds the game and resets it once.
// A nil logger discards output.
func New(cfg config.ConsoleConfig, logger *log.Logger) *Console {
	if cfg.FramesPerTick < 1 {
		cfg.FramesPerTick = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hw := gba.NewHardware()
	gba.Setup(hw)

	c := &Console{
		cfg:    cfg,
		hw:     hw,
		keys:   gba.NewKeyState(),
		game:   snake.New(hw, cfg.Seed),
		logger: logger,
	}
	c.game.Reset()
	logger.Debug("console ready", "seed", cfg.Seed, "frames_per_tick", cfg.FramesPerTick)
	return c
}

// Step samples the key pad and runs one game tick.
func (c *Console) Step() snake.Event {
	c.keys.Update(c.hw.Keypad().Sample())
	ev := c.game.Tick(pad{c.keys})

	switch {
	case ev.Collided:
		c.logger.Debug("collision, board reset",
			"tick", c.game.Ticks(), "resets", c.game.Resets())
	case ev.Ate:
		c.logger.Debug("food eaten",
			"head", c.game.Head(), "target", c.game.TargetLength(), "food", c.game.FoodCount())
	}
	return ev
}

// Frame advances one vertical blank. Every FramesPerTick-th frame, starting
// with the first, runs a Step; stepped reports whether it did.
func (c *Console) Frame() (ev snake.Event, stepped bool) {
	if c.frame%uint64(c.cfg.FramesPerTick) == 0 {
		ev, stepped = c.Step(), true
	}
	c.frame++
	return ev, stepped
}

// Run steps the game forever, waiting FramesPerTick vertical blanks between
// ticks. It returns the context error once ctx is done.
func (c *Console) Run(ctx context.Context) error {
	vblank := gba.NewVBlank(c.cfg.FPS)
	defer vblank.Stop()

	for {
		c.Step()
		for range c.cfg.FramesPerTick {
			if err := vblank.Wait(ctx); err != nil {
				return err
			}
			c.frame++
		}
	}
}

// Render decodes the visible tile map into dst at the given cell offset.
func (c *Console) Render(dst *core.Screen, originX, originY int) {
	gba.Render(c.hw, dst, originX, originY)
}

// Keypad returns the host side of the key pad.
func (c *Console) Keypad() *gba.Keypad {
	return c.hw.Keypad()
}

// Hardware returns the emulated machine.
func (c *Console) Hardware() *gba.Hardware {
	return c.hw
}

// Game returns the running game.
func (c *Console) Game() *snake.Game {
	return c.game
}

// Frames returns the number of vertical blanks elapsed.
func (c *Console) Frames() uint64 {
	return c.frame
}

// Snapshot captures the game state.
func (c *Console) Snapshot() snake.Snapshot {
	return c.game.Snapshot()
}

// pad adapts the key state to the game's input interface.
type pad struct {
	keys *gba.KeyState
}

func (p pad) IsTriggered(d snake.Direction) bool {
	return p.keys.IsTriggered(KeyFor(d))
}

// KeyFor returns the pad key bound to a direction.
func KeyFor(d snake.Direction) gba.Key {
	switch d {
	case snake.DirUp:
		return gba.KeyUp
	case snake.DirDown:
		return gba.KeyDown
	case snake.DirLeft:
		return gba.KeyLeft
	default:
		return gba.KeyRight
	}
}
