package clock

import "time"

// Clock supplies the current time for temporal-state derivation and
// creation-time validation. Services take it as a dependency so tests can
// pin "now" instead of racing the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall-clock implementation used in production wiring.
func System() Clock { return systemClock{} }

// Fixed returns a clock frozen at the given instant.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
