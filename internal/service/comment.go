package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
)

const maxCommentLength = 2000

type CommentService struct {
	repo      ports.CommentRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
}

func NewCommentService(repo ports.CommentRepo, eventRepo ports.EventRepo, userRepo ports.UserRepo) *CommentService {
	return &CommentService{repo: repo, eventRepo: eventRepo, userRepo: userRepo}
}

// Create adds a comment of the user to a published event.
func (s *CommentService) Create(ctx context.Context, userID, eventID, message string) (*domain.Comment, error) {
	if err := validateMessage(message); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.State != domain.StatePublished {
		return nil, domain.ErrEventNotPublished
	}

	now := time.Now().UTC()
	c := &domain.Comment{
		ID:       uuid.New().String(),
		AuthorID: userID,
		EventID:  eventID,
		Message:  message,
		Created:  now,
		Updated:  now,
	}
	if err = s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return c, nil
}

func (s *CommentService) Update(ctx context.Context, userID, commentID, message string) (*domain.Comment, error) {
	if err := validateMessage(message); err != nil {
		return nil, err
	}

	c, err := s.owned(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	c.Message = message
	c.Updated = time.Now().UTC()
	if err = s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return c, nil
}

func (s *CommentService) DeleteByAuthor(ctx context.Context, userID, commentID string) error {
	if _, err := s.owned(ctx, userID, commentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, commentID)
}

func (s *CommentService) DeleteByAdmin(ctx context.Context, commentID string) error {
	return s.repo.Delete(ctx, commentID)
}

func (s *CommentService) GetByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	return s.repo.GetByID(ctx, commentID)
}

// List returns comments created within [f.Start, f.End]. Both bounds are
// required and the range may not reach into the future.
func (s *CommentService) List(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]*domain.Comment, error) {
	if f.Start.IsZero() || f.End.IsZero() {
		return nil, fmt.Errorf("%w: range start and end are required", domain.ErrValidation)
	}
	if f.Start.After(f.End) {
		return nil, fmt.Errorf("%w: range start is after range end", domain.ErrValidation)
	}
	if f.End.After(time.Now()) {
		return nil, fmt.Errorf("%w: range end is in the future", domain.ErrValidation)
	}

	if f.AuthorID != "" {
		if _, err := s.userRepo.GetByID(ctx, f.AuthorID); err != nil {
			return nil, fmt.Errorf("check user: %w", err)
		}
	}
	if f.EventID != "" {
		if _, err := s.eventRepo.GetByID(ctx, f.EventID); err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
	}

	return s.repo.List(ctx, f, page)
}

func (s *CommentService) owned(ctx context.Context, userID, commentID string) (*domain.Comment, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.AuthorID != userID {
		return nil, domain.ErrNotCommentAuthor
	}

	return c, nil
}

func validateMessage(message string) error {
	switch {
	case strings.TrimSpace(message) == "":
		return fmt.Errorf("%w: message is required", domain.ErrValidation)
	case len([]rune(message)) > maxCommentLength:
		return fmt.Errorf("%w: message is longer than %d characters", domain.ErrValidation, maxCommentLength)
	}
	return nil
}
