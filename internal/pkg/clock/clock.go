package clock

import "time"

// Clock is an injectable time source. All "now" computations in the
// application route through it so tests can fix time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	t time.Time
}

// Fixed returns a Clock frozen at the given instant. Intended for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now() time.Time {
	return c.t
}
