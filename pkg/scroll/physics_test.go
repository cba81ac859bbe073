package scroll

import (
	"math"
	"testing"
)

const frameDt = 1.0 / 60

// settle ticks until motion stops, failing the test if it never does.
func settle(t *testing.T, p *Physics) int {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !p.Tick(frameDt) {
			return i
		}
	}
	t.Fatalf("physics did not settle (position=%v velocity=%v)", p.Position(), p.Velocity())
	return 0
}

func TestPhysics_ClampedNeverLeavesBounds(t *testing.T) {
	p := NewClamping(0, 500)

	p.ApplyDelta(80)
	p.ApplyDelta(80)
	p.Fling(900)

	for i := 0; i < 10000; i++ {
		running := p.Tick(frameDt)
		if p.Position() < 0 || p.Position() > 500 {
			t.Fatalf("position %v escaped [0, 500] at tick %d", p.Position(), i)
		}
		if !running {
			break
		}
	}
	if p.Position() != 500 {
		t.Errorf("position = %v, want to stop dead at 500", p.Position())
	}
	if p.Velocity() != 0 {
		t.Errorf("velocity = %v, want 0 at the bound", p.Velocity())
	}
}

func TestPhysics_MomentumDecays(t *testing.T) {
	p := NewClamping(0, 10000)

	p.Fling(100)
	if !p.Tick(frameDt) {
		t.Fatal("Tick = false with fresh momentum")
	}
	if math.Abs(p.Position()-100*defaultDeceleration) > 1e-9 {
		t.Errorf("position after one tick = %v, want %v", p.Position(), 100*defaultDeceleration)
	}

	prev := math.Abs(p.Velocity())
	for p.Tick(frameDt) {
		next := math.Abs(p.Velocity())
		if next >= prev {
			t.Fatalf("velocity did not decay: %v -> %v", prev, next)
		}
		prev = next
	}
	if math.Abs(p.Velocity()) > restVelocity {
		t.Errorf("velocity = %v at rest, want <= %v", p.Velocity(), restVelocity)
	}
}

func TestPhysics_BouncingRecoversIntoBounds(t *testing.T) {
	p := NewBouncing(0, 500)
	p.ScrollTo(500)

	p.Fling(300)

	overscrolled := false
	for i := 0; i < 10000; i++ {
		running := p.Tick(frameDt)
		if p.IsOverscrolled() {
			overscrolled = true
		}
		if !running {
			break
		}
	}

	if !overscrolled {
		t.Error("fling at the edge never overscrolled")
	}
	if p.IsOverscrolled() {
		t.Errorf("position = %v still outside [0, 500] at rest", p.Position())
	}
	if p.Position() != 500 {
		t.Errorf("position = %v, want to come to rest on the bound", p.Position())
	}
}

func TestPhysics_OverscrollResistanceSlowsRecovery(t *testing.T) {
	stiff := New(Config{MaxBound: 100, Deceleration: 0.9, OverscrollResistance: 0.9, Overscroll: true})
	loose := New(Config{MaxBound: 100, Deceleration: 0.9, OverscrollResistance: 0.1, Overscroll: true})

	stiff.position = 200
	loose.position = 200
	stiff.Tick(frameDt)
	loose.Tick(frameDt)

	if stiff.Position() >= loose.Position() {
		t.Errorf("resistance 0.9 recovered to %v, 0.1 to %v; higher resistance should pull back harder",
			stiff.Position(), loose.Position())
	}
}

func TestPhysics_ApplyDeltaSmoothing(t *testing.T) {
	p := NewClamping(0, 1000)

	p.ApplyDelta(10)
	if p.Velocity() != 8 {
		t.Errorf("velocity after first delta = %v, want 10*0.8 = 8", p.Velocity())
	}
	p.ApplyDelta(10)
	// 10*0.8 + 8*0.2
	if math.Abs(p.Velocity()-9.6) > 1e-12 {
		t.Errorf("velocity after second delta = %v, want 9.6", p.Velocity())
	}
	if p.Position() != 20 {
		t.Errorf("position = %v, want the full 20px of drag", p.Position())
	}
}

func TestPhysics_NoMomentumZeroesVelocity(t *testing.T) {
	p := New(Config{MinBound: 0, MaxBound: 1000, Deceleration: 0.95})

	p.ApplyDelta(50)
	if p.Velocity() != 0 {
		t.Errorf("velocity = %v with momentum disabled, want 0", p.Velocity())
	}
	if p.Tick(frameDt) {
		t.Error("Tick = true with no momentum and in-bounds position")
	}
	if p.Position() != 50 {
		t.Errorf("position = %v, want 50", p.Position())
	}
}

func TestPhysics_ClampedDragStopsAtBound(t *testing.T) {
	p := New(Config{MinBound: 0, MaxBound: 100, Deceleration: 0.95})

	p.ApplyDelta(150)
	if p.Position() != 100 {
		t.Errorf("position = %v, want hard clamp at 100", p.Position())
	}
	p.ApplyDelta(-300)
	if p.Position() != 0 {
		t.Errorf("position = %v, want hard clamp at 0", p.Position())
	}
}

func TestPhysics_OverscrollDragTravelsPastBound(t *testing.T) {
	p := NewBouncing(0, 100)

	p.ApplyDelta(150)
	if p.Position() != 150 {
		t.Errorf("position = %v, want elastic travel to 150", p.Position())
	}
	if !p.IsOverscrolled() {
		t.Error("IsOverscrolled = false at 150 with bounds [0, 100]")
	}

	settle(t, p)
	if p.IsOverscrolled() {
		t.Errorf("position = %v did not recover into bounds", p.Position())
	}
}

func TestPhysics_ScrollToClampsAndStops(t *testing.T) {
	p := NewBouncing(0, 300)
	p.Fling(500)

	p.ScrollTo(900)
	if p.Position() != 300 {
		t.Errorf("position = %v, want clamp to 300", p.Position())
	}
	if p.Velocity() != 0 {
		t.Errorf("velocity = %v after ScrollTo, want 0", p.Velocity())
	}

	p.ScrollTo(-40)
	if p.Position() != 0 {
		t.Errorf("position = %v, want clamp to 0", p.Position())
	}
}

func TestPhysics_SetBounds(t *testing.T) {
	p := NewClamping(0, 1000)
	p.ScrollTo(800)

	// Shrinking the extent re-clamps a clamping instance immediately.
	p.SetBounds(0, 500)
	if p.Position() != 500 {
		t.Errorf("position = %v after shrink, want 500", p.Position())
	}

	// Inverted bounds collapse to the minimum.
	p.SetBounds(200, 100)
	if p.Position() != 200 {
		t.Errorf("position = %v with collapsed bounds, want 200", p.Position())
	}
}

func TestPhysics_ConfigClamping(t *testing.T) {
	p := New(Config{
		MinBound:             0,
		MaxBound:             -50,
		Deceleration:         5,
		OverscrollResistance: 3,
	})
	if p.maxBound != 0 {
		t.Errorf("maxBound = %v, want collapse to minBound", p.maxBound)
	}
	if p.deceleration != maxDeceleration {
		t.Errorf("deceleration = %v, want clamp to %v", p.deceleration, maxDeceleration)
	}
	if p.overscrollResistance != 1 {
		t.Errorf("overscrollResistance = %v, want clamp to 1", p.overscrollResistance)
	}

	low := New(Config{Deceleration: 0.1})
	if low.deceleration != minDeceleration {
		t.Errorf("deceleration = %v, want clamp to %v", low.deceleration, minDeceleration)
	}
}
