// Package chrono is the clock used wherever output depends on the current
// time, so tests can pin it.
package chrono

import "time"

type API interface {
	Now() time.Time
}

// StandardImpl reads the system clock.
type StandardImpl struct{}

func (StandardImpl) Now() time.Time {
	return time.Now()
}

// FixedImpl always returns the same instant.
type FixedImpl struct {
	Time time.Time
}

func (f FixedImpl) Now() time.Time {
	return f.Time
}
