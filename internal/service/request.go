package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RequestService runs the participation request lifecycle. Every operation
// that can change an event's confirmed count holds the event row lock for
// the duration of its transaction.
type RequestService struct {
	tx               ports.Transactor
	requestRepo      ports.RequestRepo
	eventRepo        ports.EventRepo
	userRepo         ports.UserRepo
	cancelOwnerCheck bool
	logger           logger.Logger
}

func NewRequestService(
	tx ports.Transactor,
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	cancelOwnerCheck bool,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		tx:               tx,
		requestRepo:      requestRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		cancelOwnerCheck: cancelOwnerCheck,
		logger:           logger,
	}
}

func (s *RequestService) Create(ctx context.Context, requesterID, eventID string) (*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	var req *domain.Request
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		if event.LimitReached() {
			return domain.ErrLimitExceeded
		}
		if event.Initiator.ID == requesterID {
			return domain.ErrInitiatorRequest
		}
		_, err = s.requestRepo.GetByRequesterAndEvent(ctx, requesterID, eventID)
		switch {
		case err == nil:
			return domain.ErrDuplicateRequest
		case !errors.Is(err, domain.ErrRequestNotFound):
			return fmt.Errorf("check duplicate: %w", err)
		}
		if event.State != domain.StatePublished {
			return domain.ErrEventNotPublished
		}

		req = &domain.Request{
			ID:          uuid.New().String(),
			RequesterID: requesterID,
			EventID:     eventID,
			Created:     time.Now().UTC(),
			Status:      domain.RequestPending,
		}
		if !event.Moderated() {
			req.Status = domain.RequestConfirmed
		}

		if err = s.requestRepo.Create(ctx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if req.Status == domain.RequestConfirmed {
			return s.recountConfirmed(ctx, event)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request created",
		logger.String("request_id", req.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", requesterID),
		logger.String("status", string(req.Status)),
	)

	return req, nil
}

// DecideBatch confirms or rejects pending requests of one event in the order
// given. Confirmations past the vacant places turn into rejections. A request
// that is not pending aborts the whole batch.
func (s *RequestService) DecideBatch(
	ctx context.Context,
	initiatorID, eventID string,
	requestIDs []string,
	status domain.RequestStatus,
) (*domain.DecisionResult, error) {
	if status != domain.RequestConfirmed && status != domain.RequestRejected {
		return nil, domain.NewValidationError("status must be CONFIRMED or REJECTED, got %s", status)
	}

	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	res := &domain.DecisionResult{
		Confirmed: []*domain.Request{},
		Rejected:  []*domain.Request{},
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if event.Initiator.ID != initiatorID {
			return domain.ErrNotInitiator
		}
		if !event.Moderated() {
			return nil
		}
		if event.LimitReached() {
			return domain.ErrLimitExceeded
		}

		requests, err := s.requestsInOrder(ctx, eventID, requestIDs)
		if err != nil {
			return err
		}

		vacant := event.ParticipantLimit - event.ConfirmedRequests
		for _, r := range requests {
			if r.Status != domain.RequestPending {
				return fmt.Errorf("request %s: %w", r.ID, domain.ErrRequestNotPending)
			}

			if status == domain.RequestConfirmed && vacant > 0 {
				r.Status = domain.RequestConfirmed
				if err = s.requestRepo.UpdateStatus(ctx, r); err != nil {
					return fmt.Errorf("confirm request: %w", err)
				}
				if err = s.recountConfirmed(ctx, event); err != nil {
					return err
				}
				vacant--
				res.Confirmed = append(res.Confirmed, r)
				continue
			}

			r.Status = domain.RequestRejected
			if err = s.requestRepo.UpdateStatus(ctx, r); err != nil {
				return fmt.Errorf("reject request: %w", err)
			}
			res.Rejected = append(res.Rejected, r)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("requests decided",
		logger.String("event_id", eventID),
		logger.Int("confirmed", len(res.Confirmed)),
		logger.Int("rejected", len(res.Rejected)),
	)

	return res, nil
}

// requestsInOrder loads the requests and returns them in the caller's order.
// Unknown ids and requests of another event are reported as not found.
func (s *RequestService) requestsInOrder(ctx context.Context, eventID string, ids []string) ([]*domain.Request, error) {
	found, err := s.requestRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	byID := make(map[string]*domain.Request, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	ordered := make([]*domain.Request, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok || r.EventID != eventID {
			return nil, fmt.Errorf("request %s: %w", id, domain.ErrRequestNotFound)
		}
		ordered = append(ordered, r)
	}

	return ordered, nil
}

// Cancel moves a pending or confirmed request to CANCELED. With the owner
// check on, only the requester may cancel it.
func (s *RequestService) Cancel(ctx context.Context, userID, requestID string) (*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if s.cancelOwnerCheck && req.RequesterID != userID {
		return nil, domain.ErrNotRequester
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByIDForUpdate(ctx, req.EventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		// status may have changed before the lock was taken
		req, err = s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		if req.Status != domain.RequestPending && req.Status != domain.RequestConfirmed {
			return fmt.Errorf("request %s is %s: %w", req.ID, req.Status, domain.ErrNotCancelable)
		}

		wasConfirmed := req.Status == domain.RequestConfirmed
		req.Status = domain.RequestCanceled
		if err = s.requestRepo.UpdateStatus(ctx, req); err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}

		if wasConfirmed {
			return s.recountConfirmed(ctx, event)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request canceled",
		logger.String("request_id", req.ID),
		logger.String("event_id", req.EventID),
		logger.String("user_id", userID),
	)

	return req, nil
}

func (s *RequestService) ListByUser(ctx context.Context, userID string) ([]*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	return s.requestRepo.ListByRequester(ctx, userID)
}

func (s *RequestService) ListForEvent(ctx context.Context, initiatorID, eventID string) ([]*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Initiator.ID != initiatorID {
		return nil, domain.ErrNotInitiator
	}

	return s.requestRepo.ListByEvent(ctx, eventID)
}

// recountConfirmed sets the event's cached count from the stored requests.
// It must run inside the transaction that changed the statuses.
func (s *RequestService) recountConfirmed(ctx context.Context, event *domain.Event) error {
	n, err := s.requestRepo.CountByEventAndStatus(ctx, event.ID, domain.RequestConfirmed)
	if err != nil {
		return fmt.Errorf("count confirmed: %w", err)
	}

	if err = s.eventRepo.SetConfirmedRequests(ctx, event.ID, n); err != nil {
		return fmt.Errorf("set confirmed requests: %w", err)
	}
	event.ConfirmedRequests = n

	return nil
}
