package carousel

import "time"

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already ran or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimerScheduler schedules callbacks on the runtime timer heap
type TimerScheduler struct{}

// AfterFunc runs f in its own goroutine once d has elapsed
func (TimerScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
