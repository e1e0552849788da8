package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilesnake/internal/config"
	"github.com/vovakirdan/tilesnake/internal/core"
	"github.com/vovakirdan/tilesnake/internal/games/snake"
	"github.com/vovakirdan/tilesnake/internal/gba"
	"github.com/vovakirdan/tilesnake/internal/grid"
)

func testConfig() config.ConsoleConfig {
	return config.ConsoleConfig{Seed: snake.DefaultSeed, FPS: 60, FramesPerTick: 4}
}

func TestNewSetsUpAndResetsOnce(t *testing.T) {
	c := New(testConfig(), nil)

	// 16 setup writes, one per cell from the reset, one for the head.
	if got, want := c.Hardware().Writes(), uint64(16+grid.Width*grid.Height+1); got != want {
		t.Errorf("writes = %d, want %d", got, want)
	}

	ref := snake.New(nil, snake.DefaultSeed)
	ref.Reset()
	if c.Snapshot() != ref.Snapshot() {
		t.Errorf("state after New:\n%s\nwant:\n%s", c.Snapshot(), ref.Snapshot())
	}
	if got := c.Hardware().VRAM16(grid.Address(15, 10)); got != grid.SnakeBody.Code() {
		t.Errorf("head tile = %#04x, want snake", got)
	}
	if got := c.Hardware().VRAM16(grid.Address(0, 0)); got != grid.Empty.Code() {
		t.Errorf("corner tile = %#04x, want empty", got)
	}
}

func TestStepMatchesBareGame(t *testing.T) {
	c := New(testConfig(), nil)
	ref := snake.New(nil, snake.DefaultSeed)
	ref.Reset()

	for i := range 200 {
		got := c.Step()
		want := ref.Tick(nil)
		if got != want {
			t.Fatalf("tick %d: event %+v, want %+v", i, got, want)
		}
	}
	if c.Snapshot() != ref.Snapshot() {
		t.Fatal("console diverged from bare game")
	}
}

func TestTappedKeyTurns(t *testing.T) {
	c := New(testConfig(), nil)

	c.Keypad().Tap(gba.KeyLeft)
	c.Step()
	if c.Game().Direction() != snake.DirLeft {
		t.Fatalf("direction = %v, want left", c.Game().Direction())
	}
	if got, want := c.Game().Head(), (snake.Position{X: 14, Y: 10}); got != want {
		t.Errorf("head = %+v, want %+v", got, want)
	}
}

func TestHeldKeyTriggersOnce(t *testing.T) {
	c := New(testConfig(), nil)

	c.Keypad().Hold(gba.KeyLeft)
	c.Step()
	c.Keypad().Tap(gba.KeyDown)
	c.Step()
	if c.Game().Direction() != snake.DirDown {
		t.Fatalf("direction = %v, want down", c.Game().Direction())
	}

	// Left is still held but is not a new press.
	c.Step()
	if c.Game().Direction() != snake.DirDown {
		t.Errorf("held key re-triggered: direction = %v", c.Game().Direction())
	}

	c.Keypad().Release(gba.KeyLeft)
	c.Step()
	c.Keypad().Hold(gba.KeyLeft)
	c.Step()
	if c.Game().Direction() != snake.DirLeft {
		t.Errorf("press after release ignored: direction = %v", c.Game().Direction())
	}
}

func TestFramePacing(t *testing.T) {
	c := New(testConfig(), nil)

	var stepped []int
	for i := range 12 {
		if _, ok := c.Frame(); ok {
			stepped = append(stepped, i)
		}
	}
	want := []int{0, 4, 8}
	if len(stepped) != len(want) {
		t.Fatalf("stepped on frames %v, want %v", stepped, want)
	}
	for i := range want {
		if stepped[i] != want[i] {
			t.Fatalf("stepped on frames %v, want %v", stepped, want)
		}
	}
	if c.Game().Ticks() != 3 {
		t.Errorf("ticks = %d, want 3", c.Game().Ticks())
	}
	if c.Frames() != 12 {
		t.Errorf("frames = %d, want 12", c.Frames())
	}
}

func TestFramesPerTickClamped(t *testing.T) {
	cfg := testConfig()
	cfg.FramesPerTick = 0
	c := New(cfg, nil)

	for range 3 {
		if _, ok := c.Frame(); !ok {
			t.Fatal("expected a step on every frame")
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.FPS = 1000
	cfg.FramesPerTick = 1
	c := New(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}
	if c.Game().Ticks() == 0 {
		t.Error("Run made no ticks")
	}
}

func TestCollisionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	c := New(testConfig(), logger)
	var collided bool
	for range 11 {
		if c.Step().Collided {
			collided = true
		}
	}
	if !collided {
		t.Fatal("expected a wall collision within 11 ticks")
	}
	if !strings.Contains(buf.String(), "collision") {
		t.Errorf("log missing collision entry:\n%s", buf.String())
	}
}

func TestRenderShowsHead(t *testing.T) {
	c := New(testConfig(), nil)
	screen := core.NewScreen(gba.ScreenTilesW*gba.CellsPerTile, gba.ScreenTilesH)
	c.Render(screen, 0, 0)

	for _, x := range []int{30, 31} {
		if got := screen.Get(x, 10); got != '█' {
			t.Errorf("head cell %d = %q, want full block", x, got)
		}
	}
	if got := screen.Get(0, 0); got != ' ' {
		t.Errorf("empty cell = %q, want blank", got)
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		dir  snake.Direction
		want gba.Key
	}{
		{snake.DirUp, gba.KeyUp},
		{snake.DirDown, gba.KeyDown},
		{snake.DirLeft, gba.KeyLeft},
		{snake.DirRight, gba.KeyRight},
	}
	for _, tt := range tests {
		if got := KeyFor(tt.dir); got != tt.want {
			t.Errorf("KeyFor(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}
