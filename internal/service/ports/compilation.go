package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type CompilationRepo interface {
	Create(ctx context.Context, c *domain.Compilation, eventIDs []string) error
	Update(ctx context.Context, c *domain.Compilation, eventIDs []string) error
	GetByID(ctx context.Context, id string) (*domain.Compilation, []string, error)
	List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error)
	EventIDs(ctx context.Context, compilationID string) ([]string, error)
	Delete(ctx context.Context, id string) error
}
