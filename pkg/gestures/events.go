package gestures

import (
	"fmt"
	"time"

	"github.com/go-kinetic/kinetic/pkg/graphics"
)

// PointerPhase identifies the stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown means the pointer made contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove means the pointer moved while in contact.
	PointerPhaseMove
	// PointerPhaseUp means the pointer was released.
	PointerPhaseUp
	// PointerPhaseCancel means the gesture was aborted by the host
	// (focus loss, system interruption). No classification is emitted.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a raw pointer sample delivered by the host.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// SwipeDirection is the dominant axis direction of a swipe.
type SwipeDirection int

const (
	// SwipeLeft is a horizontal swipe toward negative X.
	SwipeLeft SwipeDirection = iota
	// SwipeRight is a horizontal swipe toward positive X.
	SwipeRight
	// SwipeUp is a vertical swipe toward negative Y.
	SwipeUp
	// SwipeDown is a vertical swipe toward positive Y.
	SwipeDown
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	default:
		return fmt.Sprintf("SwipeDirection(%d)", int(d))
	}
}

// Event is a classified gesture emitted by a [Detector].
//
// Concrete types: [Tap], [LongPress], [Swipe], [PanStart], [PanUpdate],
// [PanEnd]. Events returned from a single detector call must be processed
// in order; a PanStart always precedes PanUpdates for the same gesture.
type Event interface {
	event()
}

// Tap is a press-and-release within the pan threshold.
type Tap struct {
	// Position is where the pointer was released.
	Position graphics.Offset
	// Count is 1 for a single tap, 2 for a double tap, and so on.
	// It increments while successive taps land within the double-tap
	// interval of each other.
	Count int
}

// LongPress is a press held past the long-press duration without panning.
type LongPress struct {
	// Position is where the press started.
	Position graphics.Offset
	// Duration is how long the pointer had been held when the gesture fired.
	Duration time.Duration
}

// Swipe is a fast pan release whose travel and velocity both cleared the
// swipe thresholds. It is emitted immediately after the PanEnd of the
// same gesture.
type Swipe struct {
	Direction SwipeDirection
	// Velocity is the last sampled pointer velocity in pixels per second.
	Velocity graphics.Offset
	// Distance is the straight-line travel from the press origin in pixels.
	Distance float64
}

// PanStart marks the displacement from the press origin exceeding the
// pan threshold.
type PanStart struct {
	// Position is the press origin, not the position that crossed the
	// threshold.
	Position graphics.Offset
}

// PanUpdate reports pointer motion while panning.
type PanUpdate struct {
	// Delta is the motion since the previous sample.
	Delta graphics.Offset
	// Velocity is the instantaneous velocity in pixels per second.
	Velocity graphics.Offset
	// Total is the accumulated displacement from the press origin.
	Total graphics.Offset
}

// PanEnd reports the release of a pan gesture.
type PanEnd struct {
	// Velocity is the last sampled velocity, suitable for handing to
	// scroll.Physics.Fling or animation.Spring.Impulse.
	Velocity graphics.Offset
	// Total is the accumulated displacement from the press origin.
	Total graphics.Offset
}

func (Tap) event()       {}
func (LongPress) event() {}
func (Swipe) event()     {}
func (PanStart) event()  {}
func (PanUpdate) event() {}
func (PanEnd) event()    {}
