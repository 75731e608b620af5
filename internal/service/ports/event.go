package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	SetConfirmedRequests(ctx context.Context, eventID string, confirmed int) error
	UpdateViews(ctx context.Context, views map[string]int64) error
	ListByInitiator(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error)
	ListPublishedIDs(ctx context.Context, page domain.Page) ([]string, error)
	SearchAdmin(ctx context.Context, f domain.AdminEventFilter, page domain.Page) ([]*domain.Event, error)
	SearchPublic(ctx context.Context, f domain.PublicEventFilter, page domain.Page) ([]*domain.Event, error)
	ExistsByCategory(ctx context.Context, categoryID string) (bool, error)
}

type LocationRepo interface {
	Save(ctx context.Context, loc *domain.Location) error
}
