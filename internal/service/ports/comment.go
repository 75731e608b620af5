package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	Update(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	List(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
