package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
