package gba

// Palette slots used by the game: color 15 of banks 0 and 1.
const (
	PalSnake = 15
	PalFood  = 31
)

// Setup performs the one-time display initialization: mode 0 with BG0 enabled,
// BG0's tile map in screen block 1, two palette colors, and the block
// character drawn into tile 0. Tile 1 stays blank.
func Setup(h *Hardware) {
	h.WriteDispCnt(DispBG0)
	h.WriteBG0Cnt(1 << bgScreenBaseShift)
	h.WritePal(PalSnake, 0x7fff)
	h.WritePal(PalFood, 31<<5)

	// Rows 1-6 of tile 0: a 6x6 block of color 15 with a one-pixel border.
	for i := uint32(1); i < 7; i++ {
		h.WriteVRAM16(i*2, 0xfff0)
		h.WriteVRAM16(i*2+1, 0x0fff)
	}
}
