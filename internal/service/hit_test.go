package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHitService_Save(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewHitService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, h *domain.Hit) error {
			h.ID = 42
			return nil
		})

	hit, err := svc.Save(context.Background(), domain.Hit{App: "ewm-service", URI: "/events/1", IP: "1.2.3.4"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), hit.ID)
	assert.False(t, hit.Timestamp.IsZero())
}

func TestHitService_Save_MissingFields(t *testing.T) {
	svc := NewHitService(mocks.NewMockHitRepo(t), newTestLogger(t))

	_, err := svc.Save(context.Background(), domain.Hit{App: "app", URI: "/events/1"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHitService_Stats(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewHitService(repo, newTestLogger(t))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q := domain.StatsQuery{Start: start, End: start.Add(time.Hour), URIs: []string{"/events/1"}, Unique: true}
	want := []domain.ViewStats{{App: "ewm-service", URI: "/events/1", Hits: 3}}
	repo.EXPECT().Stats(mock.Anything, q).Return(want, nil)

	got, err := svc.Stats(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHitService_Stats_StartAfterEnd(t *testing.T) {
	svc := NewHitService(mocks.NewMockHitRepo(t), newTestLogger(t))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Stats(context.Background(), domain.StatsQuery{Start: start, End: start.Add(-time.Second)})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
