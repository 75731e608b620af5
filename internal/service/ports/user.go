package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, ids []string, page domain.Page) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
