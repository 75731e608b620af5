package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	tx           ports.Transactor
	repo         ports.EventRepo
	locationRepo ports.LocationRepo
	categoryRepo ports.CategoryRepo
	userRepo     ports.UserRepo
	views        *ViewService
	logger       logger.Logger
}

func NewEventService(
	tx ports.Transactor,
	repo ports.EventRepo,
	locationRepo ports.LocationRepo,
	categoryRepo ports.CategoryRepo,
	userRepo ports.UserRepo,
	views *ViewService,
	logger logger.Logger,
) *EventService {
	return &EventService{
		tx:           tx,
		repo:         repo,
		locationRepo: locationRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		views:        views,
		logger:       logger,
	}
}

func (s *EventService) Create(ctx context.Context, userID string, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateNewEvent(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	event := &domain.Event{
		ID:                uuid.New().String(),
		Annotation:        input.Annotation,
		Description:       input.Description,
		Title:             input.Title,
		Category:          *category,
		Initiator:         *user,
		Location:          domain.Location{Lat: input.Location.Lat, Lon: input.Location.Lon},
		EventDate:         input.EventDate,
		CreatedOn:         time.Now().UTC(),
		RequestModeration: true,
		State:             domain.StatePending,
	}
	if input.Paid != nil {
		event.Paid = *input.Paid
	}
	if input.ParticipantLimit != nil {
		event.ParticipantLimit = *input.ParticipantLimit
	}
	if input.RequestModeration != nil {
		event.RequestModeration = *input.RequestModeration
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.locationRepo.Save(ctx, &event.Location); err != nil {
			return fmt.Errorf("save location: %w", err)
		}
		if err := s.repo.Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("user_id", userID),
	)

	return event, nil
}

func validateNewEvent(input domain.CreateEventInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case strings.TrimSpace(input.Annotation) == "":
		return fmt.Errorf("%w: annotation is required", domain.ErrValidation)
	case strings.TrimSpace(input.Description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case input.CategoryID == "":
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	case !input.EventDate.After(time.Now()):
		return fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	case input.ParticipantLimit != nil && *input.ParticipantLimit < 0:
		return fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
	}
	return nil
}

func (s *EventService) ListByInitiator(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	return s.repo.ListByInitiator(ctx, userID, page)
}

// GetByInitiator hides events of other users as not found.
func (s *EventService) GetByInitiator(ctx context.Context, userID, eventID string) (*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Initiator.ID != userID {
		return nil, domain.ErrEventNotFound
	}

	return event, nil
}

func (s *EventService) UpdateByInitiator(ctx context.Context, userID, eventID string, patch domain.EventPatch) (*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.repo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if event.Initiator.ID != userID {
			return domain.ErrNotInitiator
		}
		if event.State == domain.StatePublished {
			return domain.ErrAlreadyPublished
		}

		if err = applyStateAction(event, domain.ActorInitiator, patch.StateAction); err != nil {
			return err
		}
		return s.ApplyPatch(ctx, event, patch)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event updated by initiator",
		logger.String("event_id", eventID),
		logger.String("state", string(event.State)),
	)

	return event, nil
}

func (s *EventService) UpdateByAdmin(ctx context.Context, eventID string, patch domain.EventPatch) (*domain.Event, error) {
	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.repo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		if err = applyStateAction(event, domain.ActorAdmin, patch.StateAction); err != nil {
			return err
		}
		return s.ApplyPatch(ctx, event, patch)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event updated by admin",
		logger.String("event_id", eventID),
		logger.String("state", string(event.State)),
	)

	return event, nil
}

func applyStateAction(event *domain.Event, actor domain.Actor, action *domain.StateAction) error {
	if action == nil {
		return nil
	}

	to, err := domain.Transition(actor, event.State, *action)
	if err != nil {
		return err
	}

	if to == domain.StatePublished && event.State != domain.StatePublished {
		now := time.Now().UTC()
		event.PublishedOn = &now
	}
	event.State = to

	return nil
}

// ApplyPatch copies the present fields of patch onto event and stores it.
// Blank strings count as absent. A new location is stored before the event.
func (s *EventService) ApplyPatch(ctx context.Context, event *domain.Event, patch domain.EventPatch) error {
	if v := patch.Annotation; v != nil && strings.TrimSpace(*v) != "" {
		event.Annotation = *v
	}
	if v := patch.Description; v != nil && strings.TrimSpace(*v) != "" {
		event.Description = *v
	}
	if v := patch.Title; v != nil && strings.TrimSpace(*v) != "" {
		event.Title = *v
	}
	if v := patch.CategoryID; v != nil && *v != "" {
		category, err := s.categoryRepo.GetByID(ctx, *v)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		event.Category = *category
	}
	if v := patch.EventDate; v != nil {
		if !v.After(time.Now()) {
			return fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
		}
		event.EventDate = *v
	}
	if v := patch.Paid; v != nil {
		event.Paid = *v
	}
	if v := patch.ParticipantLimit; v != nil {
		switch {
		case *v < 0:
			return fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
		case *v != 0 && *v < event.ConfirmedRequests:
			return domain.ErrLimitExceeded
		}
		event.ParticipantLimit = *v
	}
	if v := patch.RequestModeration; v != nil {
		event.RequestModeration = *v
	}

	if v := patch.Location; v != nil {
		event.Location = domain.Location{ID: event.Location.ID, Lat: v.Lat, Lon: v.Lon}
		if err := s.locationRepo.Save(ctx, &event.Location); err != nil {
			return fmt.Errorf("save location: %w", err)
		}
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

func (s *EventService) AdminSearch(ctx context.Context, f domain.AdminEventFilter, page domain.Page) ([]*domain.Event, error) {
	for _, st := range f.States {
		if _, err := domain.ParseState(string(st)); err != nil {
			return nil, err
		}
	}
	if err := validateRange(f.Start, f.End); err != nil {
		return nil, err
	}

	return s.repo.SearchAdmin(ctx, f, page)
}

// PublicSearch lists published events matching f. The listing itself is
// recorded as a view of uri, and every returned event gets fresh views.
func (s *EventService) PublicSearch(
	ctx context.Context,
	f domain.PublicEventFilter,
	page domain.Page,
	uri, ip string,
) ([]*domain.Event, error) {
	if err := validateRange(f.Start, f.End); err != nil {
		return nil, err
	}
	if _, err := domain.ParseEventSort(string(f.Sort)); err != nil {
		return nil, err
	}

	events, err := s.repo.SearchPublic(ctx, f, page)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}

	s.views.RecordView(ctx, uri, ip)
	s.views.Refresh(ctx, events...)

	if f.Sort == domain.SortViews {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Views > events[j].Views
		})
	}

	return events, nil
}

// GetPublished returns a published event with fresh views; any other state is not found.
func (s *EventService) GetPublished(ctx context.Context, eventID, uri, ip string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.State != domain.StatePublished {
		return nil, domain.ErrEventNotFound
	}

	s.views.RecordView(ctx, uri, ip)
	s.views.Refresh(ctx, event)

	return event, nil
}

func validateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return fmt.Errorf("%w: range start is after range end", domain.ErrValidation)
	}
	return nil
}
