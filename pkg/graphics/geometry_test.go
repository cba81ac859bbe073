package graphics

import (
	"math"
	"testing"
)

func TestOffset_VectorOps(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: -1, Y: 2}

	if got := a.Add(b); got != (Offset{X: 2, Y: 6}) {
		t.Errorf("Add = %v, want (2, 6)", got)
	}
	if got := a.Sub(b); got != (Offset{X: 4, Y: 2}) {
		t.Errorf("Sub = %v, want (4, 2)", got)
	}
	if got := a.Scale(2); got != (Offset{X: 6, Y: 8}) {
		t.Errorf("Scale = %v, want (6, 8)", got)
	}
	if got := a.Distance(); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if !(Offset{}).IsZero() {
		t.Error("zero offset IsZero = false")
	}
	if (Offset{X: 0, Y: 1e-9}).IsZero() {
		t.Error("nonzero offset IsZero = true")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(10, 0, 1); got != 0 {
		t.Errorf("Lerp(10, 0, 1) = %v, want 0", got)
	}
	// t outside [0, 1] extrapolates; callers clamp when they need to.
	if got := Lerp(0, 10, 1.5); got != 15 {
		t.Errorf("Lerp(0, 10, 1.5) = %v, want 15", got)
	}
}

func TestLerpOffset(t *testing.T) {
	a := Offset{X: 0, Y: 100}
	b := Offset{X: 50, Y: 0}

	mid := LerpOffset(a, b, 0.5)
	if mid != (Offset{X: 25, Y: 50}) {
		t.Errorf("LerpOffset mid = %v, want (25, 50)", mid)
	}
	if got := LerpOffset(a, b, 0); got != a {
		t.Errorf("LerpOffset at 0 = %v, want %v", got, a)
	}
	if got := LerpOffset(a, b, 1); got != b {
		t.Errorf("LerpOffset at 1 = %v, want %v", got, b)
	}
}

func TestColor_Channels(t *testing.T) {
	c := RGBA8(0x11, 0x22, 0x33, 0x44)
	if c != 0x44112233 {
		t.Errorf("RGBA8 = %#x, want 0x44112233", uint32(c))
	}
	if c.Alpha() != 0x44 {
		t.Errorf("Alpha = %#x, want 0x44", c.Alpha())
	}
	if RGB(0x11, 0x22, 0x33) != 0xFF112233 {
		t.Errorf("RGB = %#x, want opaque alpha", uint32(RGB(0x11, 0x22, 0x33)))
	}
}

func TestLerpColor(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(255, 255, 255)

	if got := LerpColor(black, white, 0); got != black {
		t.Errorf("LerpColor at 0 = %#x, want black", uint32(got))
	}
	if got := LerpColor(black, white, 1); got != white {
		t.Errorf("LerpColor at 1 = %#x, want white", uint32(got))
	}

	mid := LerpColor(black, white, 0.5)
	for shift := 0; shift <= 16; shift += 8 {
		channel := float64(uint8(mid >> shift))
		if math.Abs(channel-127.5) > 1 {
			t.Errorf("channel at shift %d = %v, want ~127", shift, channel)
		}
	}
	if mid.Alpha() != 0xFF {
		t.Errorf("Alpha = %#x, want opaque", mid.Alpha())
	}
}
