package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// newTestTx returns a transactor that runs fn in place.
func newTestTx(t *testing.T) *mocks.MockTransactor {
	t.Helper()
	tx := mocks.NewMockTransactor(t)
	tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	return tx
}

type requestDeps struct {
	tx          *mocks.MockTransactor
	requestRepo *mocks.MockRequestRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
}

func newRequestService(t *testing.T, ownerCheck bool) (*RequestService, requestDeps) {
	d := requestDeps{
		tx:          newTestTx(t),
		requestRepo: mocks.NewMockRequestRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
	}
	svc := NewRequestService(d.tx, d.requestRepo, d.eventRepo, d.userRepo, ownerCheck, newTestLogger(t))
	return svc, d
}

func publishedEvent(limit, confirmed int, moderation bool) *domain.Event {
	return &domain.Event{
		ID:                "e1",
		Initiator:         domain.User{ID: "init"},
		ParticipantLimit:  limit,
		ConfirmedRequests: confirmed,
		RequestModeration: moderation,
		State:             domain.StatePublished,
	}
}

func pending(id string) *domain.Request {
	return &domain.Request{ID: id, RequesterID: "u-" + id, EventID: "e1", Status: domain.RequestPending}
}

func TestRequestService_Create_Moderated(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(10, 0, true), nil)
	d.requestRepo.EXPECT().GetByRequesterAndEvent(mock.Anything, "u1", "e1").Return(nil, domain.ErrRequestNotFound)
	d.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	req, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestPending, req.Status)
	assert.Equal(t, "u1", req.RequesterID)
	assert.Equal(t, "e1", req.EventID)
	assert.NotEmpty(t, req.ID)
}

func TestRequestService_Create_UnlimitedIsConfirmed(t *testing.T) {
	svc, d := newRequestService(t, true)

	event := publishedEvent(0, 4, true)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.requestRepo.EXPECT().GetByRequesterAndEvent(mock.Anything, "u1", "e1").Return(nil, domain.ErrRequestNotFound)
	d.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestConfirmed).Return(5, nil)
	d.eventRepo.EXPECT().SetConfirmedRequests(mock.Anything, "e1", 5).Return(nil)

	req, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestConfirmed, req.Status)
	assert.Equal(t, 5, event.ConfirmedRequests)
}

func TestRequestService_Create_NoModerationIsConfirmed(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(3, 1, false), nil)
	d.requestRepo.EXPECT().GetByRequesterAndEvent(mock.Anything, "u1", "e1").Return(nil, domain.ErrRequestNotFound)
	d.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestConfirmed).Return(2, nil)
	d.eventRepo.EXPECT().SetConfirmedRequests(mock.Anything, "e1", 2).Return(nil)

	req, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestConfirmed, req.Status)
}

func TestRequestService_Create_ChecksInOrder(t *testing.T) {
	tests := []struct {
		name      string
		event     *domain.Event
		requester string
		existing  bool
		wantErr   error
	}{
		{
			name:      "limit reached wins over everything",
			event:     &domain.Event{ID: "e1", Initiator: domain.User{ID: "u1"}, ParticipantLimit: 1, ConfirmedRequests: 1, State: domain.StatePending},
			requester: "u1",
			existing:  true,
			wantErr:   domain.ErrLimitExceeded,
		},
		{
			name:      "initiator before duplicate",
			event:     &domain.Event{ID: "e1", Initiator: domain.User{ID: "u1"}, State: domain.StatePending},
			requester: "u1",
			existing:  true,
			wantErr:   domain.ErrInitiatorRequest,
		},
		{
			name:      "duplicate before not published",
			event:     &domain.Event{ID: "e1", Initiator: domain.User{ID: "init"}, State: domain.StatePending},
			requester: "u1",
			existing:  true,
			wantErr:   domain.ErrDuplicateRequest,
		},
		{
			name:      "not published",
			event:     &domain.Event{ID: "e1", Initiator: domain.User{ID: "init"}, State: domain.StateCanceled},
			requester: "u1",
			wantErr:   domain.ErrEventNotPublished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newRequestService(t, true)

			d.userRepo.EXPECT().GetByID(mock.Anything, tt.requester).Return(&domain.User{ID: tt.requester}, nil)
			d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(tt.event, nil)
			if tt.existing {
				d.requestRepo.EXPECT().GetByRequesterAndEvent(mock.Anything, tt.requester, "e1").
					Return(&domain.Request{ID: "r0", Status: domain.RequestCanceled}, nil).Maybe()
			} else {
				d.requestRepo.EXPECT().GetByRequesterAndEvent(mock.Anything, tt.requester, "e1").
					Return(nil, domain.ErrRequestNotFound).Maybe()
			}

			_, err := svc.Create(context.Background(), tt.requester, "e1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func TestRequestService_Create_EventNotFound(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), "u1", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestService_Create_UserNotFound(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), "ghost", "e1")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRequestService_Create_DuplicateRaceHitsUniqueIndex(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(0, 0, true), nil)
	d.requestRepo.EXPECT().GetByRequesterAndEvent(mock.Anything, "u1", "e1").Return(nil, domain.ErrRequestNotFound)
	d.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateRequest)

	_, err := svc.Create(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestRequestService_DecideBatch_ConfirmsUpToLimit(t *testing.T) {
	svc, d := newRequestService(t, true)

	event := publishedEvent(2, 0, true)
	r1, r2, r3 := pending("r1"), pending("r2"), pending("r3")

	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	// storage order differs from the caller's order
	d.requestRepo.EXPECT().ListByIDs(mock.Anything, []string{"r1", "r2", "r3"}).
		Return([]*domain.Request{r3, r1, r2}, nil)
	d.requestRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil).Times(3)
	d.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestConfirmed).Return(1, nil).Once()
	d.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestConfirmed).Return(2, nil).Once()
	d.eventRepo.EXPECT().SetConfirmedRequests(mock.Anything, "e1", 1).Return(nil).Once()
	d.eventRepo.EXPECT().SetConfirmedRequests(mock.Anything, "e1", 2).Return(nil).Once()

	res, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r1", "r2", "r3"}, domain.RequestConfirmed)

	require.NoError(t, err)
	require.Len(t, res.Confirmed, 2)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "r1", res.Confirmed[0].ID)
	assert.Equal(t, "r2", res.Confirmed[1].ID)
	assert.Equal(t, "r3", res.Rejected[0].ID)
	assert.Equal(t, domain.RequestRejected, r3.Status)
	assert.Equal(t, 2, event.ConfirmedRequests)
	assert.LessOrEqual(t, event.ConfirmedRequests, event.ParticipantLimit)
}

func TestRequestService_DecideBatch_Reject(t *testing.T) {
	svc, d := newRequestService(t, true)

	r1 := pending("r1")
	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(5, 1, true), nil)
	d.requestRepo.EXPECT().ListByIDs(mock.Anything, []string{"r1"}).Return([]*domain.Request{r1}, nil)
	d.requestRepo.EXPECT().UpdateStatus(mock.Anything, r1).Return(nil)

	res, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r1"}, domain.RequestRejected)

	require.NoError(t, err)
	assert.Empty(t, res.Confirmed)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, domain.RequestRejected, r1.Status)
}

func TestRequestService_DecideBatch_SecondCallConflicts(t *testing.T) {
	svc, d := newRequestService(t, true)

	r1 := pending("r1")
	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").
		RunAndReturn(func(context.Context, string) (*domain.Event, error) {
			return publishedEvent(5, 0, true), nil
		})
	d.requestRepo.EXPECT().ListByIDs(mock.Anything, []string{"r1"}).Return([]*domain.Request{r1}, nil)
	d.requestRepo.EXPECT().UpdateStatus(mock.Anything, r1).Return(nil).Once()
	d.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestConfirmed).Return(1, nil).Once()
	d.eventRepo.EXPECT().SetConfirmedRequests(mock.Anything, "e1", 1).Return(nil).Once()

	_, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r1"}, domain.RequestConfirmed)
	require.NoError(t, err)

	_, err = svc.DecideBatch(context.Background(), "init", "e1", []string{"r1"}, domain.RequestConfirmed)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRequestService_DecideBatch_NotPendingAbortsBatch(t *testing.T) {
	tx := mocks.NewMockTransactor(t)
	requestRepo := mocks.NewMockRequestRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewRequestService(tx, requestRepo, eventRepo, userRepo, true, newTestLogger(t))

	var txErr error
	tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			txErr = fn(ctx)
			return txErr
		})

	r1 := pending("r1")
	r2 := &domain.Request{ID: "r2", EventID: "e1", Status: domain.RequestConfirmed}
	userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(5, 1, true), nil)
	requestRepo.EXPECT().ListByIDs(mock.Anything, []string{"r1", "r2"}).Return([]*domain.Request{r1, r2}, nil)
	requestRepo.EXPECT().UpdateStatus(mock.Anything, r1).Return(nil)
	requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestConfirmed).Return(2, nil)
	eventRepo.EXPECT().SetConfirmedRequests(mock.Anything, "e1", 2).Return(nil)

	res, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r1", "r2"}, domain.RequestConfirmed)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
	// the transaction sees the error and rolls back the work done for r1
	assert.ErrorIs(t, txErr, domain.ErrRequestNotPending)
}

func TestRequestService_DecideBatch_NoModerationIsNoop(t *testing.T) {
	for _, event := range []*domain.Event{publishedEvent(0, 0, true), publishedEvent(5, 0, false)} {
		svc, d := newRequestService(t, true)

		d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
		d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)

		res, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r1"}, domain.RequestConfirmed)

		require.NoError(t, err)
		assert.Empty(t, res.Confirmed)
		assert.Empty(t, res.Rejected)
	}
}

func TestRequestService_DecideBatch_LimitAlreadyReached(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(2, 2, true), nil)

	_, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r1"}, domain.RequestRejected)

	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

func TestRequestService_DecideBatch_NotInitiator(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "other").Return(&domain.User{ID: "other"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(2, 0, true), nil)

	_, err := svc.DecideBatch(context.Background(), "other", "e1", []string{"r1"}, domain.RequestConfirmed)

	assert.ErrorIs(t, err, domain.ErrNotInitiator)
}

func TestRequestService_DecideBatch_ForeignRequest(t *testing.T) {
	svc, d := newRequestService(t, true)

	foreign := &domain.Request{ID: "r9", EventID: "e2", Status: domain.RequestPending}
	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(2, 0, true), nil)
	d.requestRepo.EXPECT().ListByIDs(mock.Anything, []string{"r9", "missing"}).Return([]*domain.Request{foreign}, nil)

	_, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r9", "missing"}, domain.RequestConfirmed)

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestService_DecideBatch_InvalidStatus(t *testing.T) {
	svc, _ := newRequestService(t, true)

	_, err := svc.DecideBatch(context.Background(), "init", "e1", []string{"r1"}, domain.RequestCanceled)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Cancel_Pending(t *testing.T) {
	svc, d := newRequestService(t, true)

	req := &domain.Request{ID: "r1", RequesterID: "u1", EventID: "e1", Status: domain.RequestPending}
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(2, 0, true), nil)
	d.requestRepo.EXPECT().UpdateStatus(mock.Anything, req).Return(nil)

	got, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestCanceled, got.Status)
}

func TestRequestService_Cancel_RejectedConflicts(t *testing.T) {
	for _, status := range []domain.RequestStatus{domain.RequestRejected, domain.RequestCanceled} {
		t.Run(string(status), func(t *testing.T) {
			svc, d := newRequestService(t, true)

			req := &domain.Request{ID: "r1", RequesterID: "u1", EventID: "e1", Status: status}
			d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
			d.requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
			d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(2, 1, true), nil)

			_, err := svc.Cancel(context.Background(), "u1", "r1")

			require.ErrorIs(t, err, domain.ErrNotCancelable)
			assert.ErrorIs(t, err, domain.ErrConflict)
			assert.Equal(t, status, req.Status)
			d.requestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
		})
	}
}

func TestRequestService_Cancel_ConfirmedRecounts(t *testing.T) {
	svc, d := newRequestService(t, true)

	event := publishedEvent(2, 2, true)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.requestRepo.EXPECT().GetByID(mock.Anything, "r1").
		RunAndReturn(func(context.Context, string) (*domain.Request, error) {
			return &domain.Request{ID: "r1", RequesterID: "u1", EventID: "e1", Status: domain.RequestConfirmed}, nil
		})
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.requestRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil)
	d.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestConfirmed).Return(1, nil)
	d.eventRepo.EXPECT().SetConfirmedRequests(mock.Anything, "e1", 1).Return(nil)

	got, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestCanceled, got.Status)
	assert.Equal(t, 1, event.ConfirmedRequests)
}

func TestRequestService_Cancel_OwnerCheck(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	d.requestRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Request{ID: "r1", RequesterID: "u1", EventID: "e1", Status: domain.RequestPending}, nil)

	_, err := svc.Cancel(context.Background(), "u2", "r1")

	assert.ErrorIs(t, err, domain.ErrNotRequester)
}

func TestRequestService_Cancel_OwnerCheckDisabled(t *testing.T) {
	svc, d := newRequestService(t, false)

	req := &domain.Request{ID: "r1", RequesterID: "u1", EventID: "e1", Status: domain.RequestPending}
	d.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	d.requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(publishedEvent(2, 0, true), nil)
	d.requestRepo.EXPECT().UpdateStatus(mock.Anything, req).Return(nil)

	got, err := svc.Cancel(context.Background(), "u2", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestCanceled, got.Status)
}

func TestRequestService_Cancel_RequestNotFound(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.requestRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRequestNotFound)

	_, err := svc.Cancel(context.Background(), "u1", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestService_ListForEvent_NotInitiator(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(0, 0, true), nil)

	_, err := svc.ListForEvent(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrNotInitiator)
}

func TestRequestService_ListForEvent_Success(t *testing.T) {
	svc, d := newRequestService(t, true)

	list := []*domain.Request{pending("r1"), pending("r2")}
	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(0, 0, true), nil)
	d.requestRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(list, nil)

	got, err := svc.ListForEvent(context.Background(), "init", "e1")

	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestRequestService_ListByUser_Error(t *testing.T) {
	svc, d := newRequestService(t, true)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.requestRepo.EXPECT().ListByRequester(mock.Anything, "u1").Return(nil, errors.New("db error"))

	_, err := svc.ListByUser(context.Background(), "u1")

	assert.Error(t, err)
}
