// Package pacer spaces out calls to rate-sensitive upstream services.
package pacer

import (
	"context"
	"time"
)

// Pacer blocks before each outbound call.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Fixed waits the same delay before every call.
type Fixed struct {
	Delay time.Duration
}

func (f Fixed) Wait(ctx context.Context) error {
	if f.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// None never waits.
type None struct{}

func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}
