package usecase

import (
	"context"
	"time"
)

// SweepExpired deletes every message whose TTL has passed.
func (uc *implUseCase) SweepExpired(ctx context.Context) (int, error) {
	n, err := uc.repo.DeleteExpired(ctx, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.SweepExpired: %v", err)
		return 0, err
	}
	if n > 0 {
		uc.l.Infof(ctx, "internal.conversation.usecase.SweepExpired: expired %d messages", n)
	}
	return n, nil
}

// Expirer removes expired messages.
type Expirer interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Sweeper runs SweepExpired on a fixed interval until its context is cancelled.
type Sweeper struct {
	uc       Expirer
	interval time.Duration
}

// NewSweeper creates a Sweeper. A non-positive interval defaults to ten minutes.
func NewSweeper(uc Expirer, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{uc: uc, interval: interval}
}

// Run sweeps once immediately, then on every tick. It returns nil when ctx ends.
func (s *Sweeper) Run(ctx context.Context) error {
	_, _ = s.uc.SweepExpired(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_, _ = s.uc.SweepExpired(ctx)
		}
	}
}
