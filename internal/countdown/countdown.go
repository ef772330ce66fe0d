// Package countdown drives the one-second ticks of the active row.
//
// A Timer owns at most one live ticker. Start always stops the previous ticker
// before creating the next, and every tick carries the generation it was
// started with so consumers can drop a tick that was already in flight when
// its countdown was replaced.
package countdown

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Interval between ticks.
const Interval = time.Second

type Tick struct {
	Gen uint64
	At  time.Time
}

type Timer struct {
	clock clockwork.Clock
	sink  func(Tick)

	mu     sync.Mutex
	gen    uint64
	ticker clockwork.Ticker
	done   chan struct{}
}

// New returns a Timer that delivers ticks to sink. sink runs on the timer's
// goroutine; it may call Start or Stop.
func New(clock clockwork.Clock, sink func(Tick)) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if sink == nil {
		sink = func(Tick) {}
	}
	return &Timer{clock: clock, sink: sink}
}

// Start cancels the running countdown, if any, and starts a new one.
func (t *Timer) Start() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.gen++
	gen := t.gen
	ticker := t.clock.NewTicker(Interval)
	done := make(chan struct{})
	t.ticker, t.done = ticker, done

	go t.run(gen, ticker, done)
	return gen
}

// Stop cancels the running countdown. Stop does not wait for a tick that is
// already being delivered; that tick still carries the old generation.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Live reports whether a countdown is running.
func (t *Timer) Live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticker != nil
}

// Generation returns the generation of the most recent Start.
func (t *Timer) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

func (t *Timer) stopLocked() {
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.done)
	t.ticker, t.done = nil, nil
}

func (t *Timer) run(gen uint64, ticker clockwork.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case at := <-ticker.Chan():
			select {
			case <-done:
				return
			default:
			}
			t.sink(Tick{Gen: gen, At: at})
		}
	}
}
