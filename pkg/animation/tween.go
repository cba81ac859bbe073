package animation

import "github.com/go-kinetic/kinetic/pkg/graphics"

// Tween interpolates between Begin and End values based on animation
// progress.
//
// Tween maps the 0-1 progress of a [Coordinator] entry to any value range
// or type. Use the helper constructors ([TweenFloat64], [TweenOffset],
// [TweenColor]) for common types, or create custom tweens with a Lerp
// function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the current progress of id
// in the coordinator. Unknown ids evaluate at zero progress.
func (tw *Tween[T]) Transform(c *Coordinator, id string) T {
	progress, _ := c.Progress(id)
	return tw.Evaluate(progress)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: graphics.Lerp}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{Begin: begin, End: end, Lerp: graphics.LerpOffset}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: graphics.LerpColor}
}
