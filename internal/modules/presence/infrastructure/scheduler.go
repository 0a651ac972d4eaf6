package infrastructure

import (
	"time"

	"github.com/sglre6355/lurkbot/internal/modules/presence/application/ports"
)

// StdScheduler arms real one-shot timers backed by time.AfterFunc.
type StdScheduler struct{}

// AfterFunc arms a one-shot timer that calls fn after d has elapsed.
func (StdScheduler) AfterFunc(d time.Duration, fn func()) ports.Timer {
	return time.AfterFunc(d, fn)
}

// Ensure StdScheduler implements ports.Scheduler.
var _ ports.Scheduler = StdScheduler{}
