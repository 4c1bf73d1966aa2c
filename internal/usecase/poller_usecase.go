package usecase

import (
	"context"
	"time"
)

// CycleStats summarizes one completed poll cycle
type CycleStats struct {
	Subscriptions int
	StopsQueried  int
	StopFailures  int
	Matched       int
	Notified      int
	SendFailures  int
	Elapsed       time.Duration
}

// PollerUsecase defines the interface for the arrival notification poll cycle
type PollerUsecase interface {
	// RunCycle executes one poll cycle: load subscriptions, fetch stop times
	// per stop, match trips, and dispatch due notifications at most once per
	// arrival. A failing stop never aborts the cycle
	RunCycle(ctx context.Context, now time.Time) (*CycleStats, error)
}
