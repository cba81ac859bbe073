// Package gestures classifies a stream of raw pointer samples into discrete
// gesture events: taps, double taps, long presses, pans and swipes.
//
// The [Detector] is a plain value type with owned state and no internal
// scheduling. The host delivers pointer-down, move and up samples as they
// arrive and processes the returned events in order; while a pointer is
// held, the host polls [Detector.CheckLongPress] to surface a long press
// before release. A single detector instance persists across gesture
// cycles so it can count multi-taps.
package gestures

import (
	"math"
	"time"

	"github.com/go-kinetic/kinetic/pkg/graphics"
)

const (
	// DefaultLongPressDuration is how long a pointer must be held without
	// panning before the gesture classifies as a long press.
	DefaultLongPressDuration = 500 * time.Millisecond

	// DefaultSwipeMinDistance is the minimum travel in pixels for a pan
	// release to also classify as a swipe.
	DefaultSwipeMinDistance = 50.0

	// SwipeMinVelocity is the minimum dominant-axis release velocity in
	// pixels per second for a pan to also classify as a swipe.
	SwipeMinVelocity = 200.0

	// DoubleTapInterval is the maximum gap between two taps for the second
	// to count as part of a multi-tap sequence.
	DoubleTapInterval = 300 * time.Millisecond

	// PanThreshold is the displacement from the press origin, in pixels,
	// past which motion classifies as a pan rather than a tap.
	PanThreshold = 5.0

	// velocitySampleRate normalizes per-sample deltas to pixels per second.
	// Pointer samples are assumed to arrive at ~60 Hz; dividing by the real
	// inter-sample interval would be more robust, but downstream fling
	// tuning depends on this fixed-rate estimate, so it stays.
	velocitySampleRate = 60.0
)

// DetectorConfig tunes the classification thresholds. Zero or negative
// values fall back to the defaults.
type DetectorConfig struct {
	LongPressDuration time.Duration
	SwipeMinDistance  float64
}

// Detector turns pointer-down/move/up samples into gesture events.
//
// State machine: Idle -> Pressed -> Panning (once displacement exceeds
// [PanThreshold]) -> Idle on release. Exactly one classification is
// emitted per press/release cycle: a Tap, a LongPress, or a PanEnd
// optionally followed by a Swipe. A new pointer-down always resets the
// per-cycle accumulators, even mid-gesture.
//
// Detector is not safe for concurrent use; each instance belongs to one
// host object on one goroutine.
type Detector struct {
	longPressDuration time.Duration
	swipeMinDistance  float64

	pressed       bool
	pressPosition graphics.Offset
	pressTime     time.Time
	lastPosition  graphics.Offset
	velocity      graphics.Offset
	totalDelta    graphics.Offset
	panning       bool
	longPressed   bool

	tapCount        int
	lastTapTime     time.Time
	lastTapPosition graphics.Offset
}

// NewDetector creates a detector with default thresholds.
func NewDetector() *Detector {
	return NewDetectorWithConfig(DetectorConfig{})
}

// NewDetectorWithConfig creates a detector with custom thresholds.
// Out-of-range values are replaced with the defaults rather than rejected.
func NewDetectorWithConfig(cfg DetectorConfig) *Detector {
	if cfg.LongPressDuration <= 0 {
		cfg.LongPressDuration = DefaultLongPressDuration
	}
	if cfg.SwipeMinDistance <= 0 {
		cfg.SwipeMinDistance = DefaultSwipeMinDistance
	}
	return &Detector{
		longPressDuration: cfg.LongPressDuration,
		swipeMinDistance:  cfg.SwipeMinDistance,
	}
}

// HandlePointer dispatches a raw pointer event to the phase-specific
// handler and returns any classified gestures.
func (d *Detector) HandlePointer(event PointerEvent) []Event {
	switch event.Phase {
	case PointerPhaseDown:
		return d.PointerDown(event.Position)
	case PointerPhaseMove:
		return d.PointerMove(event.Position)
	case PointerPhaseUp:
		return d.PointerUp(event.Position)
	case PointerPhaseCancel:
		d.reset()
	}
	return nil
}

// PointerDown begins a gesture cycle at pos. It never emits events.
func (d *Detector) PointerDown(pos graphics.Offset) []Event {
	d.pressed = true
	d.pressPosition = pos
	d.pressTime = Now()
	d.lastPosition = pos
	d.velocity = graphics.Offset{}
	d.totalDelta = graphics.Offset{}
	d.panning = false
	d.longPressed = false
	return nil
}

// PointerMove feeds a movement sample. Once the displacement from the
// press origin exceeds [PanThreshold] it emits a PanStart, and from then
// on a PanUpdate for every sample. A move without a preceding down is a
// no-op.
func (d *Detector) PointerMove(pos graphics.Offset) []Event {
	if !d.pressed {
		return nil
	}

	delta := pos.Sub(d.lastPosition)
	d.totalDelta = pos.Sub(d.pressPosition)
	d.velocity = delta.Scale(velocitySampleRate)
	d.lastPosition = pos

	var events []Event
	if !d.panning && d.totalDelta.Distance() > PanThreshold {
		d.panning = true
		events = append(events, PanStart{Position: d.pressPosition})
	}
	if d.panning {
		events = append(events, PanUpdate{
			Delta:    delta,
			Velocity: d.velocity,
			Total:    d.totalDelta,
		})
	}
	return events
}

// PointerUp ends the gesture cycle and emits its classification.
//
// A panning cycle emits PanEnd, plus a Swipe when both the travel and the
// dominant-axis velocity cleared the swipe thresholds. A stationary cycle
// emits LongPress when held past the long-press duration (unless
// CheckLongPress already fired it), otherwise a Tap with the running
// multi-tap count. An up without a preceding down is a no-op.
func (d *Detector) PointerUp(pos graphics.Offset) []Event {
	if !d.pressed {
		return nil
	}

	var events []Event
	switch {
	case d.panning:
		events = append(events, PanEnd{
			Velocity: d.velocity,
			Total:    d.totalDelta,
		})
		if swipe, ok := d.classifySwipe(); ok {
			events = append(events, swipe)
		}
	case d.longPressed:
		// Already surfaced via CheckLongPress; the release is silent.
	case Now().Sub(d.pressTime) >= d.longPressDuration:
		events = append(events, LongPress{
			Position: d.pressPosition,
			Duration: Now().Sub(d.pressTime),
		})
	default:
		events = append(events, d.registerTap(pos))
	}

	d.reset()
	return events
}

// CheckLongPress surfaces a long press while the pointer is still held.
// The host must call it periodically during a press; it fires at most once
// per cycle and returns false once panning has started or after it has
// fired. Whichever of CheckLongPress and the release path observes the
// threshold first wins; the other becomes a no-op.
func (d *Detector) CheckLongPress() (LongPress, bool) {
	if !d.pressed || d.panning || d.longPressed {
		return LongPress{}, false
	}
	held := Now().Sub(d.pressTime)
	if held < d.longPressDuration {
		return LongPress{}, false
	}
	d.longPressed = true
	return LongPress{Position: d.pressPosition, Duration: held}, true
}

// IsPanning reports whether the current press has crossed the pan threshold.
func (d *Detector) IsPanning() bool { return d.panning }

// classifySwipe checks the swipe thresholds against the released pan and
// picks the dominant-axis direction. An axis tie favors horizontal.
func (d *Detector) classifySwipe() (Swipe, bool) {
	distance := d.totalDelta.Distance()
	if distance < d.swipeMinDistance {
		return Swipe{}, false
	}
	if math.Max(math.Abs(d.velocity.X), math.Abs(d.velocity.Y)) < SwipeMinVelocity {
		return Swipe{}, false
	}

	var direction SwipeDirection
	if math.Abs(d.totalDelta.X) >= math.Abs(d.totalDelta.Y) {
		direction = SwipeRight
		if d.totalDelta.X < 0 {
			direction = SwipeLeft
		}
	} else {
		direction = SwipeDown
		if d.totalDelta.Y < 0 {
			direction = SwipeUp
		}
	}
	return Swipe{
		Direction: direction,
		Velocity:  d.velocity,
		Distance:  distance,
	}, true
}

// registerTap advances the multi-tap sequence and returns the Tap event.
// The count resets to 1 whenever the gap since the previous tap's
// registration exceeds [DoubleTapInterval].
func (d *Detector) registerTap(pos graphics.Offset) Tap {
	now := Now()
	if !d.lastTapTime.IsZero() && now.Sub(d.lastTapTime) < DoubleTapInterval {
		d.tapCount++
	} else {
		d.tapCount = 1
	}
	d.lastTapTime = now
	d.lastTapPosition = pos
	return Tap{Position: pos, Count: d.tapCount}
}

// reset clears the per-cycle state. Multi-tap bookkeeping survives so the
// next cycle can continue the sequence.
func (d *Detector) reset() {
	d.pressed = false
	d.panning = false
	d.longPressed = false
	d.velocity = graphics.Offset{}
	d.totalDelta = graphics.Offset{}
}
