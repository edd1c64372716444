package engine

import "time"

// Scheduler defers one-shot callbacks. The production implementation rides
// the runtime timer heap; tests substitute a manual scheduler so deferred
// transitions fire deterministically.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler schedules through time.AfterFunc
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
