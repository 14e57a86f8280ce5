package search

import (
	"sync/atomic"
	"time"
)

// deadline is a single process-wide-per-search atomic flag, set by a
// background timer and polled by every worker with acquire/release
// semantics. It is cooperative: a worker that observes it raised
// abandons its node without mutating shared state, it never panics or
// unwinds via a channel close.
type deadline struct {
	tripped atomic.Bool
}

func newDeadline() *deadline {
	return &deadline{}
}

// Raised reports whether the deadline has tripped.
func (d *deadline) Raised() bool {
	return d.tripped.Load()
}

// trip raises the flag.
func (d *deadline) trip() {
	d.tripped.Store(true)
}

// arm starts a background timer that trips the deadline after budget,
// scaled by the conservative 0.99 margin described for the driver. It
// returns a stop function that cancels the timer if the search finishes
// early.
func (d *deadline) arm(budget time.Duration) (stop func()) {
	t := time.AfterFunc(time.Duration(float64(budget)*0.99), d.trip)
	return func() { t.Stop() }
}
