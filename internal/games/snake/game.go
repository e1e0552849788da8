// Package snake implements the snake state machine on top of the tile grid.
// The game is a single continuous session: running into a wall or into the
// snake resets the board in place and play carries on.
package snake

import (
	"github.com/vovakirdan/tilesnake/internal/grid"
	"github.com/vovakirdan/tilesnake/internal/prng"
)

// Game tuning.
const (
	MaxLength     = 100 // Capacity of the body buffer
	MaxFood       = 4   // Food items allowed on the board at once
	InitialLength = 5   // Target length after a reset
	GrowthPerFood = 5   // Target length gained per food item
	DefaultSeed   = 1234
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Position is a playfield coordinate. Coordinates are unsigned, so stepping
// off the top or left edge wraps to a huge value that the grid reads as a wall.
type Position struct {
	X, Y uint
}

// Input reports edge-triggered direction presses for the current tick.
type Input interface {
	IsTriggered(d Direction) bool
}

// Event describes what a single tick did.
type Event struct {
	FoodSpawned bool
	Ate         bool
	Collided    bool
}

// Game holds the whole game state. It owns its grid and generator.
type Game struct {
	grid *grid.Grid
	rng  *prng.Rand

	pos          Position
	body         [MaxLength]Position // Tail at index 0, oldest first
	length       int
	targetLength int
	direction    Direction
	foodCount    int

	ticks  uint64
	resets uint64
}

// New creates a game drawing into the given tile writer.
// The board is not initialized until Reset is called.
func New(out grid.TileWriter, seed uint32) *Game {
	return &Game{
		grid: grid.New(out),
		rng:  prng.New(seed),
	}
}

// Reset clears the board and puts a fresh snake in the center.
// The generator keeps its state.
func (g *Game) Reset() {
	g.grid.Clear()
	g.pos = Position{X: grid.Width / 2, Y: grid.Height / 2}
	g.body = [MaxLength]Position{}
	g.length = 0
	g.targetLength = InitialLength
	g.direction = DirUp
	g.foodCount = 0
	g.grid.Set(g.pos.X, g.pos.Y, grid.SnakeBody)
}

// Tick advances the game by one cell.
func (g *Game) Tick(in Input) Event {
	var ev Event
	g.ticks++

	g.processInput(in)
	g.advanceBody()
	ev.FoodSpawned = g.spawnFood()

	g.pos = g.pos.Step(g.direction)

	switch g.grid.Get(g.pos.X, g.pos.Y) {
	case grid.SnakeBody:
		g.resets++
		g.Reset()
		ev.Collided = true
		return ev
	case grid.Food:
		g.foodCount--
		g.targetLength = min(g.targetLength+GrowthPerFood, MaxLength-1)
		ev.Ate = true
	}

	g.grid.Set(g.pos.X, g.pos.Y, grid.SnakeBody)
	return ev
}

// processInput applies fresh presses in Up, Down, Left, Right order; the last one wins.
// Reversing straight into the neck is allowed and ends in a collision.
func (g *Game) processInput(in Input) {
	if in == nil {
		return
	}
	for _, d := range [...]Direction{DirUp, DirDown, DirLeft, DirRight} {
		if in.IsTriggered(d) {
			g.direction = d
		}
	}
}

// advanceBody records the current head and either grows or drops the tail.
func (g *Game) advanceBody() {
	g.body[g.length] = g.pos
	if g.length < g.targetLength {
		g.length++
		return
	}

	tail := g.body[0]
	g.grid.Set(tail.X, tail.Y, grid.Empty)
	copy(g.body[:g.length], g.body[1:g.length+1])
}

// spawnFood draws one candidate cell and places food there if allowed.
// Rejected candidates are not retried.
func (g *Game) spawnFood() bool {
	x := uint(g.rng.NextU8() & 31)
	y := uint(g.rng.NextU8() & 31)

	if g.foodCount >= MaxFood || !grid.InBounds(x, y) {
		return false
	}
	if g.grid.Get(x, y) != grid.Empty {
		return false
	}
	g.grid.Set(x, y, grid.Food)
	g.foodCount++
	return true
}

// Step returns the neighbouring position in direction d using wrapping arithmetic.
func (p Position) Step(d Direction) Position {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

// Head returns the snake's current leading position.
func (g *Game) Head() Position {
	return g.pos
}

// Body returns the trail behind the head, oldest first.
func (g *Game) Body() []Position {
	out := make([]Position, g.length)
	copy(out, g.body[:g.length])
	return out
}

// Length returns the number of body positions currently tracked.
func (g *Game) Length() int {
	return g.length
}

// TargetLength returns the length the snake is growing toward.
func (g *Game) TargetLength() int {
	return g.targetLength
}

// Direction returns the current movement direction.
func (g *Game) Direction() Direction {
	return g.direction
}

// FoodCount returns the number of food items on the board.
func (g *Game) FoodCount() int {
	return g.foodCount
}

// Grid returns the playfield.
func (g *Game) Grid() *grid.Grid {
	return g.grid
}

// Ticks returns the number of ticks played since construction.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Resets returns the number of collisions since construction.
func (g *Game) Resets() uint64 {
	return g.resets
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
