// Package clock abstracts the time operations the reminder timer needs so
// tests can drive periods deterministically. Production code uses Real();
// tests use Fake() and call Advance.
package clock

import "time"

// Clock is the subset of the time package the timer depends on.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once after d elapses. The returned Timer cancels
	// the pending call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	// Stop reports whether the call was prevented from running.
	Stop() bool
}

// Real returns a Clock backed by the time package.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
