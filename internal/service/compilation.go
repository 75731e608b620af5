package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
)

type CompilationService struct {
	repo      ports.CompilationRepo
	eventRepo ports.EventRepo
}

func NewCompilationService(repo ports.CompilationRepo, eventRepo ports.EventRepo) *CompilationService {
	return &CompilationService{repo: repo, eventRepo: eventRepo}
}

func (s *CompilationService) Create(ctx context.Context, input domain.CreateCompilationInput) (*domain.Compilation, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	c := &domain.Compilation{
		ID:    uuid.New().String(),
		Title: input.Title,
	}
	if input.Pinned != nil {
		c.Pinned = *input.Pinned
	}

	ids := dedupe(input.EventIDs)
	if err := s.repo.Create(ctx, c, ids); err != nil {
		return nil, fmt.Errorf("create compilation: %w", err)
	}

	events, err := s.eventRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list compilation events: %w", err)
	}
	c.Events = events

	return c, nil
}

func (s *CompilationService) Update(ctx context.Context, id string, patch domain.CompilationPatch) (*domain.Compilation, error) {
	c, ids, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		c.Title = *patch.Title
	}
	if patch.Pinned != nil {
		c.Pinned = *patch.Pinned
	}
	var newIDs []string
	if patch.EventIDs != nil {
		newIDs = dedupe(patch.EventIDs)
		ids = newIDs
	}

	if err = s.repo.Update(ctx, c, newIDs); err != nil {
		return nil, fmt.Errorf("update compilation: %w", err)
	}

	if c.Events, err = s.eventRepo.ListByIDs(ctx, ids); err != nil {
		return nil, fmt.Errorf("list compilation events: %w", err)
	}

	return c, nil
}

func (s *CompilationService) GetByID(ctx context.Context, id string) (*domain.Compilation, error) {
	c, ids, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Events, err = s.eventRepo.ListByIDs(ctx, ids); err != nil {
		return nil, fmt.Errorf("list compilation events: %w", err)
	}

	return c, nil
}

func (s *CompilationService) List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error) {
	list, err := s.repo.List(ctx, pinned, page)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}

	for _, c := range list {
		ids, err := s.repo.EventIDs(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list compilation events: %w", err)
		}
		if c.Events, err = s.eventRepo.ListByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("list compilation events: %w", err)
		}
	}

	return list, nil
}

func (s *CompilationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
