package theme

import (
	"sync"
	"time"
)

// defaultDebounce is the reload coalescing window. Editors tend to fire
// several filesystem events per save; only the last one matters.
const defaultDebounce = 250 * time.Millisecond

// debouncer coalesces rapid triggers into a single callback invocation.
type debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

func newDebouncer(duration time.Duration) *debouncer {
	if duration == 0 {
		duration = defaultDebounce
	}
	return &debouncer{duration: duration}
}

// trigger schedules callback after the debounce window. A trigger that
// arrives before the window elapses cancels the previously scheduled
// callback.
func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// Only the most recently scheduled callback may run. Stop() can
		// return false when the timer already fired, so the sequence
		// check is what actually prevents stale callbacks.
		run := seq == d.seq
		if run {
			d.timer = nil
		}
		d.mu.Unlock()
		if run {
			callback()
		}
	})
}

// cancel drops any pending callback.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
