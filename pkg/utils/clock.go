package utils

import "time"

// LongDateLayout renders dates the way US correspondence does: "October 15, 2026".
const LongDateLayout = "January 2, 2006"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock always returns the same instant. Used by tests for golden output.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

func FormatLongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}
