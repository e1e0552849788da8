package gba

import "github.com/vovakirdan/tilesnake/internal/core"

// Visible area of a regular background in tiles (240x160 pixels).
const (
	ScreenTilesW = 30
	ScreenTilesH = 20

	mapTilesW  = 32 // Tile-map row stride
	tilePixels = 64
)

// CellsPerTile is the number of terminal columns used for one tile, which
// keeps tiles roughly square in a terminal font.
const CellsPerTile = 2

// coverage runes from empty to solid.
var coverage = [...]rune{' ', '░', '▒', '▓', '█'}

// Render decodes background 0 into dst with the top-left tile at (originX, originY).
// Each tile becomes CellsPerTile cells whose rune reflects how many of its
// pixels are set and whose color is the tile's dominant palette color.
// Nothing is drawn when the display is off or not in a tiled mode.
func Render(h *Hardware, dst *core.Screen, originX, originY int) {
	if h.dispCnt&DispBG0 == 0 || h.dispCnt&DispModeMask != 0 {
		return
	}

	base := h.screenBase()
	for ty := 0; ty < ScreenTilesH; ty++ {
		for tx := 0; tx < ScreenTilesW; tx++ {
			entry := h.VRAM16(base + uint32(tx) + uint32(ty)*mapTilesW)
			r, c := h.decodeTile(entry)
			for i := 0; i < CellsPerTile; i++ {
				dst.Set(originX+tx*CellsPerTile+i, originY+ty, r, c)
			}
		}
	}
}

// decodeTile returns the coverage rune and dominant color of a map entry.
func (h *Hardware) decodeTile(entry uint16) (rune, core.Color) {
	var counts [16]int
	set := 0

	if h.bg0Cnt&bgColor256 != 0 {
		// 8bpp tiles are not used by the game; draw them as solid default color.
		return coverage[len(coverage)-1], core.ColorNone
	}

	tile := uint32(entry & 0x3ff)
	bank := int(entry >> 12)
	addr := h.charBase() + tile*16 // 32 bytes per 4bpp tile

	for i := uint32(0); i < 16; i++ {
		word := h.VRAM16(addr + i)
		for p := 0; p < 4; p++ {
			idx := word >> (p * 4) & 0xf
			if idx != 0 {
				counts[idx]++
				set++
			}
		}
	}

	if set == 0 {
		return coverage[0], core.ColorNone
	}

	dominant := 1
	for i := 2; i < 16; i++ {
		if counts[i] > counts[dominant] {
			dominant = i
		}
	}

	level := 1 + set*(len(coverage)-2)/(tilePixels/2)
	level = min(level, len(coverage)-1)
	return coverage[level], core.Color(h.Pal(bank*16 + dominant))
}
