package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// HitService is the stats service core: it stores hits and aggregates them.
type HitService struct {
	repo   ports.HitRepo
	logger logger.Logger
}

func NewHitService(repo ports.HitRepo, logger logger.Logger) *HitService {
	return &HitService{repo: repo, logger: logger}
}

func (s *HitService) Save(ctx context.Context, hit domain.Hit) (*domain.Hit, error) {
	switch {
	case strings.TrimSpace(hit.App) == "":
		return nil, fmt.Errorf("%w: app is required", domain.ErrValidation)
	case strings.TrimSpace(hit.URI) == "":
		return nil, fmt.Errorf("%w: uri is required", domain.ErrValidation)
	case strings.TrimSpace(hit.IP) == "":
		return nil, fmt.Errorf("%w: ip is required", domain.ErrValidation)
	}
	if hit.Timestamp.IsZero() {
		hit.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, &hit); err != nil {
		return nil, fmt.Errorf("save hit: %w", err)
	}

	s.logger.Debug("hit saved",
		logger.String("app", hit.App),
		logger.String("uri", hit.URI),
	)

	return &hit, nil
}

// Stats counts hits per (app, uri) between start and end inclusive. Unique
// counts distinct ips; no uris means every uri.
func (s *HitService) Stats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	if q.Start.IsZero() || q.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", domain.ErrValidation)
	}
	if q.Start.After(q.End) {
		return nil, fmt.Errorf("%w: start is after end", domain.ErrValidation)
	}

	stats, err := s.repo.Stats(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}
