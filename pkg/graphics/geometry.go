// Package graphics provides the plain geometric value types shared by the
// gesture and animation packages: pixel-space offsets and sizes, plus the
// ARGB color type used by tweens.
//
// Everything here is pure data with value semantics. No rendering backend
// is involved; the host framework maps these values onto visual properties.
package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
//
// Offset doubles as a velocity when its components are expressed in
// pixels per second, which is how the gestures package reports motion.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns the offset with both components multiplied by factor.
func (o Offset) Scale(factor float64) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Distance returns the Euclidean magnitude of the offset.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}

// IsZero reports whether both components are exactly zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Lerp linearly interpolates between two float64 values.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two offsets.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}
