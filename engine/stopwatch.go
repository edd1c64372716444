package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stopwatch run states
const (
	watchStopped = iota
	watchRunning
	watchPaused
)

// Stopwatch counts whole elapsed seconds on a background ticker.
// Start restarts from zero; Pause freezes the count and Resume continues
// it. At most one tick goroutine is live at a time: every transition out
// of the running state closes the current run's stop channel and waits
// for the goroutine before returning.
type Stopwatch struct {
	interval time.Duration
	seconds  atomic.Int64

	mu    sync.Mutex
	state int
	stop  chan struct{}
	wg    sync.WaitGroup
}

// NewStopwatch creates a stopped watch ticking at the given interval.
// Gameplay uses constants.TickInterval; tests compress it.
func NewStopwatch(interval time.Duration) *Stopwatch {
	return &Stopwatch{interval: interval}
}

// Start zeroes the count and begins ticking. Restarting while running is
// legal and supersedes the previous run.
func (sw *Stopwatch) Start() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.haltLocked()
	sw.seconds.Store(0)
	sw.runLocked()
}

// Pause freezes the count, keeping it resumable
func (sw *Stopwatch) Pause() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state != watchRunning {
		return
	}
	sw.haltLocked()
	sw.state = watchPaused
}

// Resume continues a paused watch from its frozen count
func (sw *Stopwatch) Resume() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state != watchPaused {
		return
	}
	sw.runLocked()
}

// Stop halts ticking and preserves the count. Idempotent.
func (sw *Stopwatch) Stop() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.haltLocked()
	sw.state = watchStopped
}

// Reset zeroes the count without changing the run state
func (sw *Stopwatch) Reset() {
	sw.seconds.Store(0)
}

// Seconds returns the whole seconds counted so far
func (sw *Stopwatch) Seconds() int {
	return int(sw.seconds.Load())
}

// Running reports whether the watch is actively ticking
func (sw *Stopwatch) Running() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.state == watchRunning
}

// haltLocked stops the live tick goroutine, if any
func (sw *Stopwatch) haltLocked() {
	if sw.state == watchRunning {
		close(sw.stop)
		sw.wg.Wait()
		sw.stop = nil
	}
}

// runLocked spawns a fresh tick goroutine
func (sw *Stopwatch) runLocked() {
	stop := make(chan struct{})
	sw.stop = stop
	sw.state = watchRunning
	sw.wg.Add(1)
	go sw.tick(stop)
}

func (sw *Stopwatch) tick(stop chan struct{}) {
	defer sw.wg.Done()
	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			sw.seconds.Add(1)
		}
	}
}
