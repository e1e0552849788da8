package gba

// Key is a bit in the KEYINPUT register.
type Key uint16

// Key bits in register order.
const (
	KeyA Key = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyR
	KeyL
)

// keyMask covers the ten implemented key bits.
const keyMask = 0x3ff

// Keypad is the host side of the key pad.
// Held keys stay down until released. Tapped keys stay down until the next
// Sample, so a press shorter than a tick is never lost.
type Keypad struct {
	held   Key
	tapped Key
}

// Hold marks keys as held down.
func (p *Keypad) Hold(k Key) {
	p.held |= k
}

// Release lifts held keys.
func (p *Keypad) Release(k Key) {
	p.held &^= k
}

// Tap presses keys until the next Sample.
func (p *Keypad) Tap(k Key) {
	p.tapped |= k
}

// Sample returns the KEYINPUT register value and drops pending taps.
// The register is active-low: a 0 bit means the key is down.
func (p *Keypad) Sample() uint16 {
	down := p.held | p.tapped
	p.tapped = 0
	return ^uint16(down) & keyMask
}

// KeyState tracks key transitions between samples.
type KeyState struct {
	prev Key
	cur  Key
}

// NewKeyState creates a key state with every key up.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Update latches a new KEYINPUT value. Call it once per tick before the game runs.
func (s *KeyState) Update(keyInput uint16) {
	s.prev = s.cur
	s.cur = Key(^keyInput & keyMask)
}

// IsDown reports whether any of the keys is down.
func (s *KeyState) IsDown(k Key) bool {
	return s.cur&k != 0
}

// IsTriggered reports whether the key went down since the previous Update.
func (s *KeyState) IsTriggered(k Key) bool {
	return s.cur&^s.prev&k != 0
}

func (k Key) String() string {
	switch k {
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeySelect:
		return "Select"
	case KeyStart:
		return "Start"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyR:
		return "R"
	case KeyL:
		return "L"
	default:
		return "Unknown"
	}
}
