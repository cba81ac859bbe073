// Package animation provides the time-stepped motion primitives of the
// kinetic core: a damped spring oscillator, a registry of named timed
// animations, easing curves, tweens, and the frame ticker that hosts use
// to drive them.
//
// Nothing here schedules itself. The host's single-threaded frame loop
// calls Tick/Step once per frame and maps the resulting values onto
// visual properties.
package animation

import "math"

// maxSpringDt bounds a single integration step so frame hitches cannot
// blow up the integrator.
const maxSpringDt = 0.064

// SpringConfig is the tuning of a [Spring]: a (stiffness, damping, mass)
// triple plus the rest threshold below which motion is considered settled.
type SpringConfig struct {
	Stiffness     float64
	Damping       float64
	Mass          float64
	RestThreshold float64
}

// Gentle is a soft, slightly springy motion for large surfaces.
func Gentle() SpringConfig {
	return SpringConfig{Stiffness: 120, Damping: 14, Mass: 1, RestThreshold: 0.01}
}

// Wobbly overshoots visibly before settling.
func Wobbly() SpringConfig {
	return SpringConfig{Stiffness: 180, Damping: 12, Mass: 1, RestThreshold: 0.01}
}

// Stiff settles quickly with minimal overshoot.
func Stiff() SpringConfig {
	return SpringConfig{Stiffness: 210, Damping: 20, Mass: 1, RestThreshold: 0.01}
}

// Slow creeps toward the target without oscillating.
func Slow() SpringConfig {
	return SpringConfig{Stiffness: 280, Damping: 60, Mass: 1, RestThreshold: 0.01}
}

// Snappy is a fast, tight response for small controls.
func Snappy() SpringConfig {
	return SpringConfig{Stiffness: 400, Damping: 28, Mass: 1, RestThreshold: 0.01}
}

// Spring is a single-degree-of-freedom damped harmonic oscillator that
// drives a scalar value toward a (possibly moving) target.
//
// Position, Velocity and Target may be read and written freely between
// ticks; overwriting Target is how a moving goal is expressed. The tuning
// parameters are fixed at construction and clamped to safe minimums, so a
// spring can never be configured into divergence.
type Spring struct {
	// Position is the current value of the animated scalar.
	Position float64
	// Velocity is the current rate of change in units per second.
	Velocity float64
	// Target is the value the spring is pulled toward.
	Target float64

	stiffness     float64
	damping       float64
	mass          float64
	restThreshold float64
}

// NewSpring creates a spring at rest at position zero with the given tuning.
// Out-of-range parameters are clamped rather than rejected: stiffness to at
// least 0.1, damping to at least 0, mass to at least 0.01, and the rest
// threshold to at least 0.0001.
func NewSpring(cfg SpringConfig) *Spring {
	return &Spring{
		stiffness:     math.Max(cfg.Stiffness, 0.1),
		damping:       math.Max(cfg.Damping, 0),
		mass:          math.Max(cfg.Mass, 0.01),
		restThreshold: math.Max(cfg.RestThreshold, 0.0001),
	}
}

// Tick advances the spring by dt seconds using semi-implicit Euler
// integration and reports whether it is still moving.
//
// Steps longer than 64 ms are clamped to bound the single-step error on
// frame hitches. When both the velocity and the displacement from the
// target drop within the rest threshold, the spring snaps exactly to the
// target with zero velocity and Tick returns false, so repeated ticking
// always terminates with Position == Target.
func (s *Spring) Tick(dt float64) bool {
	if dt > maxSpringDt {
		dt = maxSpringDt
	}
	if dt > 0 {
		accel := (-s.stiffness*(s.Position-s.Target) - s.damping*s.Velocity) / s.mass
		s.Velocity += accel * dt
		s.Position += s.Velocity * dt
	}

	if math.Abs(s.Velocity) <= s.restThreshold && math.Abs(s.Position-s.Target) <= s.restThreshold {
		s.Position = s.Target
		s.Velocity = 0
		return false
	}
	return true
}

// Impulse adds v to the current velocity, e.g. to continue a fling from
// a released pan gesture.
func (s *Spring) Impulse(v float64) {
	s.Velocity += v
}

// SetTarget retargets the spring without disturbing its current motion.
func (s *Spring) SetTarget(target float64) {
	s.Target = target
}

// AtRest reports whether the spring has settled on its target.
func (s *Spring) AtRest() bool {
	return s.Velocity == 0 && s.Position == s.Target
}
