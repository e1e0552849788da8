// Package prng provides the deterministic bit generator used for food placement.
// It is a plain 32-bit linear congruential generator with no global state, so two
// generators built from the same seed always produce the same sequence.
package prng

// LCG constants (Numerical Recipes).
const (
	multiplier uint32 = 1664525
	increment  uint32 = 1013904223
)

// Rand is a 32-bit linear congruential generator.
type Rand struct {
	state uint32
}

// New creates a generator with the given seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// NextBool advances the state once and returns its most significant bit.
func (r *Rand) NextBool() bool {
	r.state = r.state*multiplier + increment
	return r.state&0x80000000 != 0
}

// NextU8 packs eight NextBool draws into a byte, least significant bit first.
func (r *Rand) NextU8() uint8 {
	var result uint8
	for i := range 8 {
		if r.NextBool() {
			result |= 1 << i
		}
	}
	return result
}

// State returns the current generator word.
func (r *Rand) State() uint32 {
	return r.state
}
