package service

import (
	"context"
	"time"
)

// Delayer pauses the funnel for pacing. The pauses are cosmetic: nothing
// depends on them finishing other than the response being sent.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TimerDelayer sleeps for real, returning early if ctx is done.
type TimerDelayer struct{}

func (TimerDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay returns immediately.
type NoDelay struct{}

func (NoDelay) Wait(context.Context, time.Duration) error {
	return nil
}
