// Package testing provides deterministic test support for the kinetic
// core: a controllable clock and a scripted gesture simulator.
package testing

import (
	"sync"
	"time"

	"github.com/go-kinetic/kinetic/pkg/animation"
	"github.com/go-kinetic/kinetic/pkg/gestures"
)

// FakeClock provides controllable time for deterministic gesture and
// animation tests. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Install makes the fake clock the time source for both the gestures and
// animation packages. The returned function restores the previous clocks;
// call it in a defer or test cleanup.
func (c *FakeClock) Install() func() {
	prevAnimation := animation.SetClock(c)
	prevGestures := gestures.SetClock(c)
	return func() {
		animation.SetClock(prevAnimation)
		gestures.SetClock(prevGestures)
	}
}
