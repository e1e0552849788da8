// Package grid provides the logical tile buffer of the playfield.
// Every write is mirrored into a hardware tile map through a TileWriter;
// the hardware side is never read back.
package grid

// Playfield dimensions in tiles.
const (
	Width  = 30
	Height = 20
)

// Hardware tile-map layout. The map starts at screen block 1 (halfword 0x400)
// and its rows are 32 entries wide regardless of the playfield width.
const (
	MapBase   uint32 = 0x400
	RowStride uint32 = 32
)

// Tile is the content of one playfield cell.
type Tile uint8

const (
	Empty Tile = iota
	SnakeBody
	Food
)

// Code returns the hardware tile-map entry for the tile.
// Bits 0-9 select the character, bits 12-15 the palette bank.
func (t Tile) Code() uint16 {
	switch t {
	case SnakeBody:
		return 0x0000
	case Food:
		return 1 << 12
	default:
		return 0x0001
	}
}

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case SnakeBody:
		return "snake"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// TileWriter stores a 16-bit entry into a hardware tile-map slot.
type TileWriter interface {
	WriteTile(addr uint32, code uint16)
}

// Address maps playfield coordinates to a tile-map slot.
func Address(x, y uint) uint32 {
	return MapBase + uint32(x) + uint32(y)*RowStride
}

// Grid is a fixed-size playfield. Cells are stored in row-major order.
type Grid struct {
	cells [Width * Height]Tile
	out   TileWriter
}

// New creates a grid with every cell Empty. No hardware writes are issued.
func New(out TileWriter) *Grid {
	return &Grid{out: out}
}

// InBounds reports whether (x, y) lies on the playfield.
func InBounds(x, y uint) bool {
	return x < Width && y < Height
}

// Set stores a tile and mirrors it to hardware.
// Out-of-range coordinates are silently ignored.
func (g *Grid) Set(x, y uint, t Tile) {
	if !InBounds(x, y) {
		return
	}
	g.cells[x+y*Width] = t
	if g.out != nil {
		g.out.WriteTile(Address(x, y), t.Code())
	}
}

// Get returns the tile at (x, y).
// Anything off the playfield reads as SnakeBody, so walls and the snake
// itself collide the same way.
func (g *Grid) Get(x, y uint) Tile {
	if !InBounds(x, y) {
		return SnakeBody
	}
	return g.cells[x+y*Width]
}

// Occupied reports whether moving onto (x, y) is a collision.
func (g *Grid) Occupied(x, y uint) bool {
	return g.Get(x, y) == SnakeBody
}

// Clear sets every cell to Empty, writing each one through to hardware.
func (g *Grid) Clear() {
	for y := uint(0); y < Height; y++ {
		for x := uint(0); x < Width; x++ {
			g.Set(x, y, Empty)
		}
	}
}

// Tiles returns a copy of the logical buffer.
func (g *Grid) Tiles() [Width * Height]Tile {
	return g.cells
}

// Count returns how many cells hold the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// String renders the playfield as text, one row per line.
func (g *Grid) String() string {
	return Format(g.cells)
}

// Format renders a tile buffer as text: 'o' for snake, '*' for food, '.' for empty.
func Format(cells [Width * Height]Tile) string {
	buf := make([]byte, 0, (Width+1)*Height)
	for y := 0; y < Height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < Width; x++ {
			switch cells[x+y*Width] {
			case SnakeBody:
				buf = append(buf, 'o')
			case Food:
				buf = append(buf, '*')
			default:
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
