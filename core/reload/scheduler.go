package reload

import (
	"context"
	"errors"
	"time"

	"inventory-levels/core/inventory"

	"go.uber.org/zap"
)

// Scheduler runs full reloads on a fixed interval until its context is cancelled.
type Scheduler struct {
	coordinator *Coordinator
	interval    time.Duration
	logger      *zap.Logger
}

// NewScheduler creates a scheduler. A non-positive interval disables periodic reloads.
func NewScheduler(coordinator *Coordinator, interval time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{coordinator: coordinator, interval: interval, logger: logger}
}

// Run blocks until ctx is done. Ticks that find a reload already running are skipped.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Periodic reload disabled")
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Periodic reload started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Periodic reload stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	_, err := s.coordinator.TryFullReload(ctx)
	if errors.Is(err, inventory.ErrReloadInProgress) {
		s.logger.Warn("Skipping periodic reload, another reload is running")
	}
	// Other failures are logged by the coordinator; the previous snapshot stays published.
}
