// Package gba emulates the slice of handheld hardware the game talks to:
// display registers, palette RAM, video RAM, and the keypad register.
// All addresses are halfword indices relative to the start of each region.
package gba

// Region sizes in halfwords.
const (
	VRAMSize    = 0x8000 // 64 KiB of background VRAM
	PaletteSize = 0x200  // 256 background + 256 object entries
)

// DISPCNT bits.
const (
	DispModeMask uint16 = 0x7
	DispBG0      uint16 = 1 << 8
)

// BG0CNT fields.
const (
	bgCharBaseShift   = 2
	bgCharBaseMask    = 0x3
	bgColor256        = 1 << 7
	bgScreenBaseShift = 8
	bgScreenBaseMask  = 0x1f

	charBlockSize   = 0x2000 // halfwords per 16 KiB character block
	screenBlockSize = 0x400  // halfwords per 2 KiB screen block
)

// Hardware is an in-memory model of the registers and memory the game writes to.
// The zero value is a powered-on console with everything cleared.
type Hardware struct {
	dispCnt uint16
	bg0Cnt  uint16
	palette [PaletteSize]uint16
	vram    [VRAMSize]uint16
	keypad  Keypad
	writes  uint64
}

// NewHardware creates a cleared console.
func NewHardware() *Hardware {
	return &Hardware{}
}

// WriteDispCnt stores the display control register.
func (h *Hardware) WriteDispCnt(v uint16) {
	h.dispCnt = v
	h.writes++
}

// WriteBG0Cnt stores the background 0 control register.
func (h *Hardware) WriteBG0Cnt(v uint16) {
	h.bg0Cnt = v
	h.writes++
}

// WritePal stores a palette entry. Indices beyond palette RAM are dropped.
func (h *Hardware) WritePal(i int, v uint16) {
	if i < 0 || i >= PaletteSize {
		return
	}
	h.palette[i] = v
	h.writes++
}

// WriteVRAM16 stores a halfword into video RAM. Addresses beyond VRAM are dropped.
func (h *Hardware) WriteVRAM16(addr uint32, v uint16) {
	if addr >= VRAMSize {
		return
	}
	h.vram[addr] = v
	h.writes++
}

// WriteTile stores a tile-map entry; it is WriteVRAM16 under the grid's name.
func (h *Hardware) WriteTile(addr uint32, code uint16) {
	h.WriteVRAM16(addr, code)
}

// DispCnt returns the display control register.
func (h *Hardware) DispCnt() uint16 {
	return h.dispCnt
}

// BG0Cnt returns the background 0 control register.
func (h *Hardware) BG0Cnt() uint16 {
	return h.bg0Cnt
}

// Pal returns a palette entry, or 0 for indices beyond palette RAM.
func (h *Hardware) Pal(i int) uint16 {
	if i < 0 || i >= PaletteSize {
		return 0
	}
	return h.palette[i]
}

// VRAM16 returns a halfword of video RAM, or 0 beyond VRAM.
func (h *Hardware) VRAM16(addr uint32) uint16 {
	if addr >= VRAMSize {
		return 0
	}
	return h.vram[addr]
}

// Keypad returns the console's key pad.
func (h *Hardware) Keypad() *Keypad {
	return &h.keypad
}

// Writes returns the total number of register and memory stores.
func (h *Hardware) Writes() uint64 {
	return h.writes
}

// screenBase returns the halfword address of BG0's tile map.
func (h *Hardware) screenBase() uint32 {
	return uint32(h.bg0Cnt>>bgScreenBaseShift&bgScreenBaseMask) * screenBlockSize
}

// charBase returns the halfword address of BG0's character data.
func (h *Hardware) charBase() uint32 {
	return uint32(h.bg0Cnt>>bgCharBaseShift&bgCharBaseMask) * charBlockSize
}
