package restock

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the debounce window interactive shells use between
// an edit event and the recomputation it triggers.
const DefaultQuietPeriod = 150 * time.Millisecond

// Debouncer coalesces bursts of edit events into a single recomputation:
// every Trigger cancels the pending run and schedules a fresh one, so only
// the last call of a burst actually runs, after the quiet period. The mutex
// only fences the shell goroutine against the timer callback, there is no
// other concurrency.
type Debouncer struct {
	quiet time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// NewDebouncer returns a debouncer with the given quiet period. A zero or
// negative period falls back to DefaultQuietPeriod.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn to run after the quiet period, replacing any pending
// run. fn runs on the timer goroutine.
func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.pending = fn
	b.timer = time.AfterFunc(b.quiet, b.fire)
}

// fire runs the pending function, if Trigger or Stop did not replace or
// cancel it in the meantime.
func (b *Debouncer) fire() {
	b.mu.Lock()
	fn := b.pending
	b.pending = nil
	b.timer = nil
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop cancels the pending run, if any, without running it.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.pending = nil
}

// Flush runs the pending function immediately, if any, instead of waiting
// out the quiet period. Shells call it right before exiting.
func (b *Debouncer) Flush() {
	b.mu.Lock()
	fn := b.pending
	b.pending = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}
