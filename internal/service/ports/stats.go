package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

// StatsClient is the main service's view of the statistics service.
type StatsClient interface {
	Hit(ctx context.Context, hit domain.Hit) error
	Stats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error)
}

type HitRepo interface {
	Create(ctx context.Context, hit *domain.Hit) error
	Stats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error)
}
