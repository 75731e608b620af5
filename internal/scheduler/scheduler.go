package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type viewRefresher interface {
	RefreshPublished(ctx context.Context) (int, error)
}

// Scheduler periodically pulls view counts of published events from the
// stats service, off the read path.
type Scheduler struct {
	views    viewRefresher
	interval time.Duration
	logger   logger.Logger
}

func New(
	views viewRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		views:    views,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("views scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("views scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()

	n, err := s.views.RefreshPublished(ctx)
	if err != nil {
		s.logger.Error("failed to refresh views",
			logger.Int("refreshed", n),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("views refreshed",
		logger.Int("events", n),
		logger.Duration("took", time.Since(started)),
	)
}
