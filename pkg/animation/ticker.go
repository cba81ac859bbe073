package animation

import (
	"sync"
	"time"
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the bridge between a host frame loop and the poll-driven
// primitives in this package: start one whose callback ticks a
// [Coordinator] or steps springs, then call [StepTickers] once per frame
// from the loop. The callback receives the time elapsed since Start.
type Ticker struct {
	callback func(elapsed time.Duration)
	active   bool
	start    time.Time
}

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// NewTicker creates an inactive ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. Stopping an inactive ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.active
}

// Elapsed returns the time since the ticker started, or zero when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers. The host loop calls this once
// per frame.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.active && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers reports whether any tickers are running.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
