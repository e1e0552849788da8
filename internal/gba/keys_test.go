package gba

import (
	"context"
	"testing"
	"time"
)

func TestKeypadSample(t *testing.T) {
	var p Keypad

	if p.Sample() != keyMask {
		t.Fatal("idle keypad should read all ones")
	}

	p.Hold(KeyUp)
	p.Tap(KeyA)
	v := p.Sample()
	if v&uint16(KeyUp) != 0 || v&uint16(KeyA) != 0 {
		t.Errorf("Sample() = %#x, Up and A should read low", v)
	}

	v = p.Sample()
	if v&uint16(KeyA) == 0 {
		t.Error("tap should be dropped after one sample")
	}
	if v&uint16(KeyUp) != 0 {
		t.Error("held key should stay down")
	}

	p.Release(KeyUp)
	if p.Sample() != keyMask {
		t.Error("released key should read high")
	}
}

func TestKeyStateEdges(t *testing.T) {
	var p Keypad
	s := NewKeyState()

	p.Hold(KeyLeft)
	s.Update(p.Sample())
	if !s.IsTriggered(KeyLeft) || !s.IsDown(KeyLeft) {
		t.Error("first sample with Left down should trigger")
	}

	s.Update(p.Sample())
	if s.IsTriggered(KeyLeft) {
		t.Error("held key should trigger only once")
	}
	if !s.IsDown(KeyLeft) {
		t.Error("held key should still be down")
	}

	p.Release(KeyLeft)
	s.Update(p.Sample())
	if s.IsDown(KeyLeft) || s.IsTriggered(KeyLeft) {
		t.Error("released key should be up and not triggered")
	}

	p.Tap(KeyLeft)
	s.Update(p.Sample())
	if !s.IsTriggered(KeyLeft) {
		t.Error("new press should trigger again")
	}
	if s.IsTriggered(KeyRight) {
		t.Error("untouched key should not trigger")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyA:     "A",
		KeyUp:    "Up",
		KeyDown:  "Down",
		KeyLeft:  "Left",
		KeyRight: "Right",
		KeyL:     "L",
		Key(0):   "Unknown",
	}
	for k, want := range tests {
		if k.String() != want {
			t.Errorf("Key(%#x).String() = %q, expected %q", uint16(k), k.String(), want)
		}
	}
}

func TestVBlankWait(t *testing.T) {
	v := NewVBlank(1000)
	defer v.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := v.Wait(ctx); err != nil {
			t.Fatalf("Wait() failed: %v", err)
		}
	}
	if v.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", v.Frames())
	}
}

func TestVBlankCancel(t *testing.T) {
	v := NewVBlank(1)
	defer v.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := v.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait() = %v, expected context.Canceled", err)
	}
}
