package client

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once no new trigger has arrived for the interval.
type Debouncer struct {
	interval time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	stopped    bool
	inflight   sync.WaitGroup
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger cancels any pending call and schedules fn after the quiescence interval.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.cancelPendingLocked()
	d.generation++
	generation := d.generation

	d.inflight.Add(1)
	d.timer = time.AfterFunc(d.interval, func() {
		defer d.inflight.Done()

		d.mu.Lock()
		current := generation == d.generation && !d.stopped
		d.mu.Unlock()

		if current {
			fn()
		}
	})
}

// Stop drops any pending call and waits for a call that already started to return.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.cancelPendingLocked()
	d.mu.Unlock()

	d.inflight.Wait()
}

func (d *Debouncer) cancelPendingLocked() {
	if d.timer != nil && d.timer.Stop() {
		d.inflight.Done()
	}
	d.timer = nil
}
