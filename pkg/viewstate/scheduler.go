package viewstate

import "time"

// Scheduler abstracts delayed execution so the debounce window can be driven
// deterministically in tests instead of sleeping through real delays.
type Scheduler interface {
	// Schedule runs fn after d elapses and returns a cancel function. Cancel
	// after fn has started is a no-op.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
