package core

import "fmt"

// Color is a 15-bit BGR555 color as stored in palette RAM.
type Color uint16

// ColorNone marks a cell drawn with the terminal's default foreground.
// Bit 15 is unused by BGR555, so it never collides with a palette value.
const ColorNone Color = 0x8000

// Common palette values.
const (
	ColorBlack Color = 0x0000
	ColorWhite Color = 0x7fff
	ColorRed   Color = 0x001f
	ColorGreen Color = 0x03e0
	ColorBlue  Color = 0x7c00
)

// RGB expands the color to 8 bits per channel.
func (c Color) RGB() (r, g, b uint8) {
	expand := func(v uint16) uint8 {
		return uint8(v<<3 | v>>2)
	}
	v := uint16(c)
	return expand(v & 0x1f), expand(v >> 5 & 0x1f), expand(v >> 10 & 0x1f)
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
