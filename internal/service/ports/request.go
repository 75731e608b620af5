package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	GetByRequesterAndEvent(ctx context.Context, requesterID, eventID string) (*domain.Request, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error)
	UpdateStatus(ctx context.Context, r *domain.Request) error
	CountByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) (int, error)
}
