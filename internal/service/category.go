package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
)

type CategoryService struct {
	repo      ports.CategoryRepo
	eventRepo ports.EventRepo
}

func NewCategoryService(repo ports.CategoryRepo, eventRepo ports.EventRepo) *CategoryService {
	return &CategoryService{repo: repo, eventRepo: eventRepo}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	c := &domain.Category{ID: uuid.New().String(), Name: name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return c, nil
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	c := &domain.Category{ID: id, Name: name}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	return c, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, page domain.Page) ([]*domain.Category, error) {
	return s.repo.List(ctx, page)
}

// Delete refuses to remove a category that events still point at.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	used, err := s.eventRepo.ExistsByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("check category usage: %w", err)
	}
	if used {
		return domain.ErrCategoryInUse
	}

	return s.repo.Delete(ctx, id)
}
