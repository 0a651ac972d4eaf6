package ports

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from firing; false means the callback already fired or was
	// already stopped.
	Stop() bool
}

// Scheduler defines the interface for arming one-shot timers.
type Scheduler interface {
	// AfterFunc arms a one-shot timer that calls fn after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// RandSource defines the interface for the random draws used in scheduling
// decisions. *math/rand/v2.Rand satisfies it.
type RandSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}
