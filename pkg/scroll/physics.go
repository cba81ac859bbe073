// Package scroll implements 1-D scroll position physics: momentum decay
// after release and either hard-clamped or elastic (rubber-band) bounds.
//
// A [Physics] instance tracks one scrollable axis. The host feeds it drag
// deltas from a gesture source, hands off release velocity via
// [Physics.Fling], and calls [Physics.Tick] once per frame until it
// reports no further motion. No scheduling or rendering is involved.
package scroll

import "math"

const (
	// minDeceleration and maxDeceleration bound the per-tick velocity
	// retention factor.
	minDeceleration = 0.8
	maxDeceleration = 0.99

	// defaultDeceleration is used by the convenience constructors.
	defaultDeceleration = 0.95

	// defaultOverscrollResistance is used by the convenience constructors.
	defaultOverscrollResistance = 0.5

	// tickRate normalizes velocity integration to a 60 Hz baseline, the
	// same convention the gesture layer uses for velocity estimates.
	tickRate = 60.0

	// restVelocity is the speed below which momentum reads as stopped.
	restVelocity = 0.5

	// overscrollSnap is the overshoot, in pixels, below which a recovering
	// position snaps to the bound instead of decaying asymptotically.
	overscrollSnap = 0.5

	// smoothing is the exponential smoothing weight for drag input:
	// velocity = delta*smoothing + velocity*(1-smoothing).
	smoothing = 0.8
)

// Config tunes a [Physics] instance. Out-of-range values are clamped at
// construction: Deceleration into [0.8, 0.99] and OverscrollResistance
// into [0, 1]. A MaxBound below MinBound collapses to MinBound.
type Config struct {
	MinBound float64
	MaxBound float64
	// Deceleration is the fraction of velocity retained per 60 Hz tick.
	Deceleration float64
	// OverscrollResistance is how strongly an out-of-bounds position is
	// pulled back per tick; 0 never recovers, 1 snaps back in one tick.
	OverscrollResistance float64
	// Momentum keeps residual velocity after the pointer releases.
	Momentum bool
	// Overscroll lets the position travel elastically past the bounds
	// instead of hard-clamping at them.
	Overscroll bool
}

// Physics tracks a scroll position with momentum and bounds handling.
//
// Not safe for concurrent use; each instance belongs to one scrollable.
type Physics struct {
	position float64
	velocity float64

	minBound             float64
	maxBound             float64
	deceleration         float64
	overscrollResistance float64
	momentum             bool
	overscroll           bool
}

// New creates scroll physics from cfg, clamping out-of-range tuning.
func New(cfg Config) *Physics {
	if cfg.MaxBound < cfg.MinBound {
		cfg.MaxBound = cfg.MinBound
	}
	return &Physics{
		minBound:             cfg.MinBound,
		maxBound:             cfg.MaxBound,
		deceleration:         clamp(cfg.Deceleration, minDeceleration, maxDeceleration),
		overscrollResistance: clamp(cfg.OverscrollResistance, 0, 1),
		momentum:             cfg.Momentum,
		overscroll:           cfg.Overscroll,
	}
}

// NewClamping creates physics that stop dead at the bounds, with momentum.
// This is the Android-style default.
func NewClamping(minBound, maxBound float64) *Physics {
	return New(Config{
		MinBound:             minBound,
		MaxBound:             maxBound,
		Deceleration:         defaultDeceleration,
		OverscrollResistance: defaultOverscrollResistance,
		Momentum:             true,
	})
}

// NewBouncing creates physics with momentum and iOS-style elastic
// overscroll at the bounds.
func NewBouncing(minBound, maxBound float64) *Physics {
	return New(Config{
		MinBound:             minBound,
		MaxBound:             maxBound,
		Deceleration:         defaultDeceleration,
		OverscrollResistance: defaultOverscrollResistance,
		Momentum:             true,
		Overscroll:           true,
	})
}

// ApplyDelta applies one drag sample. With momentum enabled the sample is
// folded into the velocity estimate by exponential smoothing; otherwise
// the velocity is zeroed so releasing never coasts. The position always
// moves by the full delta, then hard-clamps when overscroll is disabled.
func (p *Physics) ApplyDelta(delta float64) {
	if p.momentum {
		p.velocity = delta*smoothing + p.velocity*(1-smoothing)
	} else {
		p.velocity = 0
	}
	p.position += delta
	if !p.overscroll {
		p.position = clamp(p.position, p.minBound, p.maxBound)
	}
}

// Tick advances the physics by dt seconds and reports whether motion
// continues (residual momentum or an out-of-bounds position recovering).
//
// Velocity decays by the deceleration factor, and the position integrates
// at the 60 Hz baseline. Beyond a bound, an overscroll-enabled instance is
// pulled back by overshoot*resistance with its velocity halved each tick,
// snapping to the bound once the overshoot is sub-pixel and momentum is
// spent; otherwise the position hard-clamps and the velocity zeroes at
// the bound.
func (p *Physics) Tick(dt float64) bool {
	p.velocity *= p.deceleration
	p.position += p.velocity * dt * tickRate

	if p.overscroll {
		if p.position > p.maxBound {
			overshoot := p.position - p.maxBound
			p.position -= overshoot * p.overscrollResistance
			p.velocity *= 0.5
			if p.position-p.maxBound < overscrollSnap && math.Abs(p.velocity) <= restVelocity {
				p.position = p.maxBound
			}
		} else if p.position < p.minBound {
			overshoot := p.minBound - p.position
			p.position += overshoot * p.overscrollResistance
			p.velocity *= 0.5
			if p.minBound-p.position < overscrollSnap && math.Abs(p.velocity) <= restVelocity {
				p.position = p.minBound
			}
		}
	} else if p.position > p.maxBound {
		p.position = p.maxBound
		p.velocity = 0
	} else if p.position < p.minBound {
		p.position = p.minBound
		p.velocity = 0
	}

	return math.Abs(p.velocity) > restVelocity || p.IsOverscrolled()
}

// Fling hands off a release velocity, in pixels per second, typically
// from a PanEnd event. It replaces any residual velocity.
func (p *Physics) Fling(velocity float64) {
	p.velocity = velocity
}

// ScrollTo jumps to pos without animation. The position clamps to the
// bounds and any momentum is discarded.
func (p *Physics) ScrollTo(pos float64) {
	p.position = clamp(pos, p.minBound, p.maxBound)
	p.velocity = 0
}

// SetBounds replaces the scroll extents. A max below min collapses to
// min. With overscroll disabled the position re-clamps immediately.
func (p *Physics) SetBounds(minBound, maxBound float64) {
	if maxBound < minBound {
		maxBound = minBound
	}
	p.minBound = minBound
	p.maxBound = maxBound
	if !p.overscroll {
		p.position = clamp(p.position, p.minBound, p.maxBound)
	}
}

// Position returns the current scroll position.
func (p *Physics) Position() float64 { return p.position }

// Velocity returns the current velocity in pixels per second.
func (p *Physics) Velocity() float64 { return p.velocity }

// IsOverscrolled reports whether the position is outside the bounds.
func (p *Physics) IsOverscrolled() bool {
	return p.position < p.minBound || p.position > p.maxBound
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
