package gestures_test

import (
	"testing"
	"time"

	"github.com/go-kinetic/kinetic/pkg/gestures"
	"github.com/go-kinetic/kinetic/pkg/graphics"
	kinetictest "github.com/go-kinetic/kinetic/pkg/testing"
)

func feed(rec *gestures.Recognizer, clock *kinetictest.FakeClock, phase gestures.PointerPhase, pos graphics.Offset) {
	clock.Advance(16 * time.Millisecond)
	rec.HandlePointer(gestures.PointerEvent{Phase: phase, Position: pos})
}

func TestRecognizer_DispatchesCallbacks(t *testing.T) {
	clock := kinetictest.NewFakeClock()
	t.Cleanup(clock.Install())

	rec := gestures.NewRecognizer()
	var log []string
	rec.OnTap = func(gestures.Tap) { log = append(log, "tap") }
	rec.OnPanStart = func(gestures.PanStart) { log = append(log, "pan-start") }
	rec.OnPanUpdate = func(gestures.PanUpdate) { log = append(log, "pan-update") }
	rec.OnPanEnd = func(gestures.PanEnd) { log = append(log, "pan-end") }
	rec.OnSwipe = func(s gestures.Swipe) { log = append(log, "swipe-"+s.Direction.String()) }

	feed(rec, clock, gestures.PointerPhaseDown, graphics.Offset{})
	feed(rec, clock, gestures.PointerPhaseUp, graphics.Offset{})

	feed(rec, clock, gestures.PointerPhaseDown, graphics.Offset{})
	feed(rec, clock, gestures.PointerPhaseMove, graphics.Offset{X: 30, Y: 0})
	feed(rec, clock, gestures.PointerPhaseMove, graphics.Offset{X: 60, Y: 0})
	feed(rec, clock, gestures.PointerPhaseUp, graphics.Offset{X: 60, Y: 0})

	want := []string{"tap", "pan-start", "pan-update", "pan-update", "pan-end", "swipe-right"}
	if len(log) != len(want) {
		t.Fatalf("dispatch log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("dispatch log = %v, want %v", log, want)
		}
	}
}

func TestRecognizer_DoubleTapRouting(t *testing.T) {
	clock := kinetictest.NewFakeClock()
	t.Cleanup(clock.Install())

	rec := gestures.NewRecognizer()
	var taps, doubles int
	rec.OnTap = func(gestures.Tap) { taps++ }
	rec.OnDoubleTap = func(tap gestures.Tap) {
		doubles++
		if tap.Count < 2 {
			t.Errorf("OnDoubleTap received Count = %d", tap.Count)
		}
	}

	press := func(pos graphics.Offset) {
		feed(rec, clock, gestures.PointerPhaseDown, pos)
		feed(rec, clock, gestures.PointerPhaseUp, pos)
	}
	press(graphics.Offset{X: 10, Y: 10})
	clock.Advance(100 * time.Millisecond)
	press(graphics.Offset{X: 10, Y: 10})

	if taps != 1 || doubles != 1 {
		t.Errorf("taps = %d, doubles = %d; want 1 and 1", taps, doubles)
	}
}

func TestRecognizer_DoubleTapFallsBackToOnTap(t *testing.T) {
	clock := kinetictest.NewFakeClock()
	t.Cleanup(clock.Install())

	rec := gestures.NewRecognizer()
	counts := []int{}
	rec.OnTap = func(tap gestures.Tap) { counts = append(counts, tap.Count) }

	press := func() {
		feed(rec, clock, gestures.PointerPhaseDown, graphics.Offset{})
		feed(rec, clock, gestures.PointerPhaseUp, graphics.Offset{})
	}
	press()
	clock.Advance(100 * time.Millisecond)
	press()

	// Without OnDoubleTap, every tap reaches OnTap with its running count.
	if len(counts) != 2 || counts[0] != 1 || counts[1] != 2 {
		t.Errorf("OnTap counts = %v, want [1 2]", counts)
	}
}

func TestRecognizer_PollFiresLongPress(t *testing.T) {
	clock := kinetictest.NewFakeClock()
	t.Cleanup(clock.Install())

	rec := gestures.NewRecognizer()
	presses := 0
	rec.OnLongPress = func(gestures.LongPress) { presses++ }

	feed(rec, clock, gestures.PointerPhaseDown, graphics.Offset{X: 5, Y: 5})
	for loopIter := 0; loopIter < 40; loopIter++ {
		clock.Advance(16 * time.Millisecond)
		rec.Poll()
	}
	feed(rec, clock, gestures.PointerPhaseUp, graphics.Offset{X: 5, Y: 5})

	if presses != 1 {
		t.Errorf("OnLongPress fired %d times, want 1", presses)
	}
}

func TestRecognizer_NilCallbacksAreSkipped(t *testing.T) {
	clock := kinetictest.NewFakeClock()
	t.Cleanup(clock.Install())

	rec := gestures.NewRecognizer()
	feed(rec, clock, gestures.PointerPhaseDown, graphics.Offset{})
	feed(rec, clock, gestures.PointerPhaseMove, graphics.Offset{X: 60, Y: 0})
	feed(rec, clock, gestures.PointerPhaseUp, graphics.Offset{X: 60, Y: 0})
	// No callbacks set; reaching here without a panic is the assertion.
}
