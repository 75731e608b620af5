package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventDeps struct {
	eventRepo    *mocks.MockEventRepo
	locationRepo *mocks.MockLocationRepo
	categoryRepo *mocks.MockCategoryRepo
	userRepo     *mocks.MockUserRepo
	stats        *mocks.MockStatsClient
}

func newEventService(t *testing.T) (*EventService, eventDeps) {
	d := eventDeps{
		eventRepo:    mocks.NewMockEventRepo(t),
		locationRepo: mocks.NewMockLocationRepo(t),
		categoryRepo: mocks.NewMockCategoryRepo(t),
		userRepo:     mocks.NewMockUserRepo(t),
		stats:        mocks.NewMockStatsClient(t),
	}
	log := newTestLogger(t)
	views := NewViewService(d.stats, d.eventRepo, "", 0, log)
	svc := NewEventService(newTestTx(t), d.eventRepo, d.locationRepo, d.categoryRepo, d.userRepo, views, log)
	return svc, d
}

func pendingEvent() *domain.Event {
	return &domain.Event{
		ID:                "e1",
		Annotation:        "annotation",
		Description:       "description",
		Title:             "Concert",
		Category:          domain.Category{ID: "c1", Name: "music"},
		Initiator:         domain.User{ID: "init", Name: "alice"},
		Location:          domain.Location{ID: "l1", Lat: 55.75, Lon: 37.61},
		EventDate:         time.Now().Add(48 * time.Hour).UTC(),
		CreatedOn:         time.Now().Add(-time.Hour).UTC(),
		ParticipantLimit:  10,
		RequestModeration: true,
		ConfirmedRequests: 3,
		State:             domain.StatePending,
	}
}

func ptr[T any](v T) *T { return &v }

func TestEventService_Create_Defaults(t *testing.T) {
	svc, d := newEventService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.categoryRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1", Name: "music"}, nil)
	d.locationRepo.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, loc *domain.Location) error {
			loc.ID = "l1"
			return nil
		})
	d.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "init", domain.CreateEventInput{
		Annotation:  "annotation",
		CategoryID:  "c1",
		Description: "description",
		EventDate:   time.Now().Add(24 * time.Hour),
		Location:    domain.Location{Lat: 1, Lon: 2},
		Title:       "Concert",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.StatePending, event.State)
	assert.False(t, event.Paid)
	assert.Zero(t, event.ParticipantLimit)
	assert.True(t, event.RequestModeration)
	assert.Equal(t, "l1", event.Location.ID)
	assert.Equal(t, "music", event.Category.Name)
	assert.Nil(t, event.PublishedOn)
}

func TestEventService_Create_Validation(t *testing.T) {
	valid := domain.CreateEventInput{
		Annotation:  "a",
		CategoryID:  "c1",
		Description: "d",
		EventDate:   time.Now().Add(time.Hour),
		Title:       "t",
	}

	tests := []struct {
		name   string
		modify func(in *domain.CreateEventInput)
	}{
		{"blank title", func(in *domain.CreateEventInput) { in.Title = "  " }},
		{"blank annotation", func(in *domain.CreateEventInput) { in.Annotation = "" }},
		{"blank description", func(in *domain.CreateEventInput) { in.Description = "" }},
		{"no category", func(in *domain.CreateEventInput) { in.CategoryID = "" }},
		{"past date", func(in *domain.CreateEventInput) { in.EventDate = time.Now().Add(-time.Hour) }},
		{"negative limit", func(in *domain.CreateEventInput) { in.ParticipantLimit = ptr(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEventService(t)

			in := valid
			tt.modify(&in)

			_, err := svc.Create(context.Background(), "init", in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_UpdateByInitiator_TitleOnly(t *testing.T) {
	svc, d := newEventService(t)

	original := pendingEvent()
	stored := *original

	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(&stored, nil)
	d.eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.UpdateByInitiator(context.Background(), "init", "e1", domain.EventPatch{Title: ptr("Opera")})

	require.NoError(t, err)
	want := *original
	want.Title = "Opera"
	assert.Equal(t, &want, got)
}

func TestEventService_UpdateByInitiator_BlankStringsIgnored(t *testing.T) {
	svc, d := newEventService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(pendingEvent(), nil)
	d.eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.UpdateByInitiator(context.Background(), "init", "e1", domain.EventPatch{
		Title:       ptr(" "),
		Annotation:  ptr(""),
		Description: ptr("\t"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Concert", got.Title)
	assert.Equal(t, "annotation", got.Annotation)
	assert.Equal(t, "description", got.Description)
}

func TestEventService_UpdateByInitiator_AllFields(t *testing.T) {
	svc, d := newEventService(t)

	date := time.Now().Add(72 * time.Hour).UTC()
	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(pendingEvent(), nil)
	d.categoryRepo.EXPECT().GetByID(mock.Anything, "c2").Return(&domain.Category{ID: "c2", Name: "theatre"}, nil)
	d.locationRepo.EXPECT().Save(mock.Anything, &domain.Location{ID: "l1", Lat: 1, Lon: 2}).Return(nil)
	d.eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.UpdateByInitiator(context.Background(), "init", "e1", domain.EventPatch{
		CategoryID:        ptr("c2"),
		EventDate:         &date,
		Location:          &domain.Location{Lat: 1, Lon: 2},
		Paid:              ptr(true),
		ParticipantLimit:  ptr(20),
		RequestModeration: ptr(false),
		StateAction:       ptr(domain.ActionCancelReview),
	})

	require.NoError(t, err)
	assert.Equal(t, "theatre", got.Category.Name)
	assert.Equal(t, date, got.EventDate)
	assert.Equal(t, domain.Location{ID: "l1", Lat: 1, Lon: 2}, got.Location)
	assert.True(t, got.Paid)
	assert.Equal(t, 20, got.ParticipantLimit)
	assert.False(t, got.RequestModeration)
	assert.Equal(t, domain.StateCanceled, got.State)
}

func TestEventService_UpdateByInitiator_SendToReviewFromCanceled(t *testing.T) {
	svc, d := newEventService(t)

	event := pendingEvent()
	event.State = domain.StateCanceled
	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.UpdateByInitiator(context.Background(), "init", "e1",
		domain.EventPatch{StateAction: ptr(domain.ActionSendToReview)})

	require.NoError(t, err)
	assert.Equal(t, domain.StatePending, got.State)
}

func TestEventService_UpdateByInitiator_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		state   domain.State
		action  *domain.StateAction
		wantErr error
	}{
		{"not initiator", "other", domain.StatePending, nil, domain.ErrNotInitiator},
		{"already published", "init", domain.StatePublished, nil, domain.ErrAlreadyPublished},
		{"publish canceled", "init", domain.StateCanceled, ptr(domain.ActionPublishEvent), domain.ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newEventService(t)

			event := pendingEvent()
			event.State = tt.state
			d.userRepo.EXPECT().GetByID(mock.Anything, tt.user).Return(&domain.User{ID: tt.user}, nil)
			d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)

			_, err := svc.UpdateByInitiator(context.Background(), tt.user, "e1",
				domain.EventPatch{Title: ptr("x"), StateAction: tt.action})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func TestEventService_UpdateByInitiator_LimitBelowConfirmed(t *testing.T) {
	svc, d := newEventService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(pendingEvent(), nil)

	_, err := svc.UpdateByInitiator(context.Background(), "init", "e1", domain.EventPatch{ParticipantLimit: ptr(2)})

	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

func TestEventService_UpdateByInitiator_CategoryNotFound(t *testing.T) {
	svc, d := newEventService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "init").Return(&domain.User{ID: "init"}, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(pendingEvent(), nil)
	d.categoryRepo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.UpdateByInitiator(context.Background(), "init", "e1", domain.EventPatch{CategoryID: ptr("nope")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_UpdateByAdmin_Publish(t *testing.T) {
	svc, d := newEventService(t)

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(pendingEvent(), nil)
	d.eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	before := time.Now().UTC()
	got, err := svc.UpdateByAdmin(context.Background(), "e1", domain.EventPatch{StateAction: ptr(domain.ActionPublishEvent)})

	require.NoError(t, err)
	assert.Equal(t, domain.StatePublished, got.State)
	require.NotNil(t, got.PublishedOn)
	assert.False(t, got.PublishedOn.Before(before))
}

func TestEventService_UpdateByAdmin_PublishTwice(t *testing.T) {
	svc, d := newEventService(t)

	event := pendingEvent()
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

	publish := domain.EventPatch{StateAction: ptr(domain.ActionPublishEvent)}
	_, err := svc.UpdateByAdmin(context.Background(), "e1", publish)
	require.NoError(t, err)

	_, err = svc.UpdateByAdmin(context.Background(), "e1", publish)
	assert.ErrorIs(t, err, domain.ErrAlreadyPublished)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEventService_UpdateByAdmin_Reject(t *testing.T) {
	svc, d := newEventService(t)

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(pendingEvent(), nil)
	d.eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.UpdateByAdmin(context.Background(), "e1", domain.EventPatch{StateAction: ptr(domain.ActionRejectEvent)})

	require.NoError(t, err)
	assert.Equal(t, domain.StateCanceled, got.State)
	assert.Nil(t, got.PublishedOn)
}

func TestEventService_UpdateByAdmin_RejectNotPending(t *testing.T) {
	svc, d := newEventService(t)

	event := pendingEvent()
	event.State = domain.StatePublished
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)

	_, err := svc.UpdateByAdmin(context.Background(), "e1", domain.EventPatch{StateAction: ptr(domain.ActionRejectEvent)})

	assert.ErrorIs(t, err, domain.ErrNotPending)
}

func TestEventService_GetByInitiator_Foreign(t *testing.T) {
	svc, d := newEventService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(pendingEvent(), nil)

	_, err := svc.GetByInitiator(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_AdminSearch(t *testing.T) {
	svc, d := newEventService(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	f := domain.AdminEventFilter{
		Users:  []string{"u1"},
		States: []domain.State{domain.StatePending, domain.StatePublished},
		Start:  &start,
		End:    &end,
	}
	page := domain.Page{From: 20, Size: 10}
	d.eventRepo.EXPECT().SearchAdmin(mock.Anything, f, page).Return([]*domain.Event{pendingEvent()}, nil)

	got, err := svc.AdminSearch(context.Background(), f, page)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEventService_AdminSearch_Invalid(t *testing.T) {
	svc, _ := newEventService(t)

	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := svc.AdminSearch(context.Background(), domain.AdminEventFilter{Start: &start, End: &end}, domain.Page{Size: 10})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AdminSearch(context.Background(),
		domain.AdminEventFilter{States: []domain.State{"DRAFT"}}, domain.Page{Size: 10})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "DRAFT")
}

func TestEventService_PublicSearch_ReconcilesViews(t *testing.T) {
	svc, d := newEventService(t)

	a := &domain.Event{ID: "a", Paid: true, State: domain.StatePublished, Views: 1}
	b := &domain.Event{ID: "b", Paid: true, State: domain.StatePublished, Views: 7}
	f := domain.PublicEventFilter{Text: "concert", Paid: ptr(true), OnlyAvailable: true, Sort: domain.SortViews}
	page := domain.Page{Size: 10}

	d.eventRepo.EXPECT().SearchPublic(mock.Anything, f, page).Return([]*domain.Event{b, a}, nil)
	d.stats.EXPECT().Hit(mock.Anything, mock.MatchedBy(func(h domain.Hit) bool {
		return h.App == DefaultAppName && h.URI == "/events" && h.IP == "10.0.0.1"
	})).Return(nil)
	d.stats.EXPECT().Stats(mock.Anything, mock.MatchedBy(func(q domain.StatsQuery) bool {
		return q.Unique && len(q.URIs) == 2 &&
			slices.Contains(q.URIs, "/events/a") && slices.Contains(q.URIs, "/events/b")
	})).Return([]domain.ViewStats{{App: DefaultAppName, URI: "/events/a", Hits: 5}}, nil)
	d.eventRepo.EXPECT().UpdateViews(mock.Anything, map[string]int64{"a": 5, "b": 0}).Return(nil)

	got, err := svc.PublicSearch(context.Background(), f, page, "/events", "10.0.0.1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, int64(5), got[0].Views)
	assert.Equal(t, int64(0), got[1].Views)
}

func TestEventService_PublicSearch_StatsDownKeepsResult(t *testing.T) {
	svc, d := newEventService(t)

	a := &domain.Event{ID: "a", State: domain.StatePublished, Views: 3}
	page := domain.Page{Size: 10}
	d.eventRepo.EXPECT().SearchPublic(mock.Anything, domain.PublicEventFilter{}, page).Return([]*domain.Event{a}, nil)
	d.stats.EXPECT().Hit(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	d.stats.EXPECT().Stats(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	got, err := svc.PublicSearch(context.Background(), domain.PublicEventFilter{}, page, "/events", "10.0.0.1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Views)
}

func TestEventService_PublicSearch_BadRange(t *testing.T) {
	svc, _ := newEventService(t)

	start := time.Now()
	end := start.Add(-time.Minute)

	_, err := svc.PublicSearch(context.Background(),
		domain.PublicEventFilter{Start: &start, End: &end}, domain.Page{Size: 10}, "/events", "ip")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetPublished(t *testing.T) {
	svc, d := newEventService(t)

	event := &domain.Event{ID: "e1", State: domain.StatePublished}
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.stats.EXPECT().Hit(mock.Anything, mock.Anything).Return(nil)
	d.stats.EXPECT().Stats(mock.Anything, mock.Anything).
		Return([]domain.ViewStats{{App: DefaultAppName, URI: "/events/e1", Hits: 9}}, nil)
	d.eventRepo.EXPECT().UpdateViews(mock.Anything, map[string]int64{"e1": 9}).Return(nil)

	got, err := svc.GetPublished(context.Background(), "e1", "/events/e1", "1.1.1.1")

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.Views)
}

func TestEventService_GetPublished_NotPublished(t *testing.T) {
	svc, d := newEventService(t)

	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(pendingEvent(), nil)

	_, err := svc.GetPublished(context.Background(), "e1", "/events/e1", "1.1.1.1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
