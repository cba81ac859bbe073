package testing

import (
	"time"

	"github.com/go-kinetic/kinetic/pkg/gestures"
	"github.com/go-kinetic/kinetic/pkg/graphics"
)

// frameInterval is the synthetic pointer sample spacing, matching the
// 60 Hz rate the detector's velocity estimate assumes.
const frameInterval = 16 * time.Millisecond

// Simulator scripts pointer sequences against a gesture detector using a
// fake clock, so gesture tests are deterministic and express intent
// ("fling right") instead of raw sample plumbing.
type Simulator struct {
	detector *gestures.Detector
	clock    *FakeClock
}

// NewSimulator creates a simulator driving detector with clock. The clock
// should already be installed as the gestures time source (see
// [FakeClock.Install]).
func NewSimulator(detector *gestures.Detector, clock *FakeClock) *Simulator {
	return &Simulator{detector: detector, clock: clock}
}

// Tap simulates a quick press and release at pos.
func (s *Simulator) Tap(pos graphics.Offset) []gestures.Event {
	var events []gestures.Event
	events = append(events, s.detector.PointerDown(pos)...)
	s.clock.Advance(3 * frameInterval)
	events = append(events, s.detector.PointerUp(pos)...)
	return events
}

// DoubleTap simulates two taps at pos separated by gap. A gap of zero
// uses 100 ms, comfortably inside the double-tap interval.
func (s *Simulator) DoubleTap(pos graphics.Offset, gap time.Duration) []gestures.Event {
	if gap <= 0 {
		gap = 100 * time.Millisecond
	}
	events := s.Tap(pos)
	s.clock.Advance(gap)
	return append(events, s.Tap(pos)...)
}

// LongPress simulates holding at pos for hold, polling the detector the
// way a frame loop would, then releasing.
func (s *Simulator) LongPress(pos graphics.Offset, hold time.Duration) []gestures.Event {
	var events []gestures.Event
	events = append(events, s.detector.PointerDown(pos)...)

	deadline := s.clock.Now().Add(hold)
	for s.clock.Now().Before(deadline) {
		s.clock.Advance(frameInterval)
		if press, ok := s.detector.CheckLongPress(); ok {
			events = append(events, press)
		}
	}

	return append(events, s.detector.PointerUp(pos)...)
}

// Drag simulates a press at start, steps evenly spaced move samples
// covering delta at one frame interval each, and a release.
func (s *Simulator) Drag(start, delta graphics.Offset, steps int) []gestures.Event {
	if steps < 1 {
		steps = 10
	}
	var events []gestures.Event
	events = append(events, s.detector.PointerDown(start)...)

	end := start.Add(delta)
	for i := 1; i <= steps; i++ {
		s.clock.Advance(frameInterval)
		pos := graphics.LerpOffset(start, end, float64(i)/float64(steps))
		events = append(events, s.detector.PointerMove(pos)...)
	}

	s.clock.Advance(frameInterval)
	return append(events, s.detector.PointerUp(end)...)
}

// Fling simulates a fast drag covering delta in few samples, producing
// the high per-sample velocity a real flick would.
func (s *Simulator) Fling(start, delta graphics.Offset) []gestures.Event {
	return s.Drag(start, delta, 3)
}
