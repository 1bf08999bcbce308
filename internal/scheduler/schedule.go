package scheduler

import (
	"sync/atomic"
	"time"
)

// warmupSchedule fires at start and then every interval after the previous
// activation, whatever that tick's outcome was.
type warmupSchedule struct {
	interval time.Duration
	started  atomic.Bool
}

func newWarmupSchedule(interval time.Duration) *warmupSchedule {
	return &warmupSchedule{interval: interval}
}

func (s *warmupSchedule) Next(t time.Time) time.Time {
	if s.started.CompareAndSwap(false, true) {
		return t
	}

	return t.Add(s.interval)
}
