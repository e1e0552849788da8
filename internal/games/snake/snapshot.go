package snake

import (
	"fmt"

	"github.com/vovakirdan/tilesnake/internal/grid"
)

// Snapshot captures the complete game state for determinism testing and tracing.
type Snapshot struct {
	Tick         uint64
	Resets       uint64
	RandState    uint32
	Head         Position
	Body         [MaxLength]Position
	Length       int
	TargetLength int
	Dir          Direction
	FoodCount    int
	Tiles        [grid.Width * grid.Height]grid.Tile
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.ticks,
		Resets:       g.resets,
		RandState:    g.rng.State(),
		Head:         g.pos,
		Body:         g.body,
		Length:       g.length,
		TargetLength: g.targetLength,
		Dir:          g.direction,
		FoodCount:    g.foodCount,
		Tiles:        g.grid.Tiles(),
	}
}

// Core returns the snapshot without counters and generator state.
// Two boards that are indistinguishable to the player have equal cores.
func (s Snapshot) Core() Snapshot {
	s.Tick = 0
	s.Resets = 0
	s.RandState = 0
	return s
}

// String returns a compact one-line summary.
func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d head=(%d,%d) dir=%s len=%d/%d food=%d resets=%d",
		s.Tick, s.Head.X, s.Head.Y, s.Dir, s.Length, s.TargetLength, s.FoodCount, s.Resets)
}

// Board renders the snapshot's tiles as text.
func (s Snapshot) Board() string {
	return grid.Format(s.Tiles)
}
