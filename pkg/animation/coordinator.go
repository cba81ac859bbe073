package animation

import (
	"sort"
	"time"
)

// Coordinator is a registry of named, time-boxed animations with
// at-most-once completion callbacks.
//
// Hosts start animations under caller-supplied string ids, sample their
// progress every frame, and call [Coordinator.Tick] once per frame to
// collect completions. The coordinator is intentionally not self-driving;
// it performs no scheduling of its own and reads time from the package
// clock (see [SetClock]).
//
// Coordinator is not safe for concurrent use; each instance belongs to
// one host loop.
type Coordinator struct {
	entries map[string]*coordinatorEntry
}

type coordinatorEntry struct {
	start      time.Time
	duration   time.Duration
	onComplete func()
	completed  bool
}

// NewCoordinator creates an empty animation registry.
func NewCoordinator() *Coordinator {
	return &Coordinator{entries: make(map[string]*coordinatorEntry)}
}

// Start registers an animation under id, replacing any existing entry
// with that id. The animation begins now and completes after duration.
func (c *Coordinator) Start(id string, duration time.Duration) {
	c.StartWithCallback(id, duration, nil)
}

// StartWithCallback registers an animation whose onComplete callback fires
// exactly once, from the Tick call that observes its expiry. Restarting an
// id discards the previous entry's callback without invoking it.
func (c *Coordinator) StartWithCallback(id string, duration time.Duration, onComplete func()) {
	c.entries[id] = &coordinatorEntry{
		start:      Now(),
		duration:   duration,
		onComplete: onComplete,
	}
}

// Progress returns the linear progress of id in [0, 1], and false for
// unknown ids. A non-positive duration reads as already complete.
func (c *Coordinator) Progress(id string) (float64, bool) {
	entry, ok := c.entries[id]
	if !ok {
		return 0, false
	}
	return entry.progress(Now()), true
}

// Eased returns the progress of id transformed by curve. Unknown ids
// return false; a nil curve reads as linear.
func (c *Coordinator) Eased(id string, curve func(float64) float64) (float64, bool) {
	progress, ok := c.Progress(id)
	if !ok {
		return 0, false
	}
	if curve != nil {
		progress = curve(progress)
	}
	return progress, true
}

// IsActive reports whether id exists and has not yet run to completion.
func (c *Coordinator) IsActive(id string) bool {
	entry, ok := c.entries[id]
	if !ok {
		return false
	}
	return !entry.completed && entry.progress(Now()) < 1
}

// IsComplete reports whether id has run to completion. Unknown ids
// report false.
func (c *Coordinator) IsComplete(id string) bool {
	entry, ok := c.entries[id]
	if !ok {
		return false
	}
	return entry.completed || entry.progress(Now()) >= 1
}

// Tick scans the registry for newly expired animations, fires each of
// their completion callbacks exactly once, and returns the completed ids
// in sorted order. The host calls it once per frame.
//
// An entry's callback is detached and the entry marked complete before
// the callback runs, so a callback that re-enters the coordinator (to
// restart or cancel animations) observes consistent state and can never
// re-fire itself. Completed entries remain queryable via IsComplete and
// Progress until cancelled or restarted.
func (c *Coordinator) Tick() []string {
	now := Now()
	var completed []string
	for id, entry := range c.entries {
		if !entry.completed && entry.progress(now) >= 1 {
			completed = append(completed, id)
		}
	}
	sort.Strings(completed)

	// Mark and detach before invoking so re-entrant calls see final state.
	for _, id := range completed {
		entry := c.entries[id]
		if entry == nil || entry.completed {
			continue
		}
		entry.completed = true
		callback := entry.onComplete
		entry.onComplete = nil
		if callback != nil {
			callback()
		}
	}
	return completed
}

// Cancel removes id without invoking its callback. Unknown ids are a no-op.
func (c *Coordinator) Cancel(id string) {
	delete(c.entries, id)
}

// CancelAll removes every entry without invoking any callbacks.
func (c *Coordinator) CancelAll() {
	clear(c.entries)
}

// Len returns the number of registered entries, completed ones included.
func (c *Coordinator) Len() int {
	return len(c.entries)
}

func (e *coordinatorEntry) progress(now time.Time) float64 {
	if e.duration <= 0 {
		return 1
	}
	progress := float64(now.Sub(e.start)) / float64(e.duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
