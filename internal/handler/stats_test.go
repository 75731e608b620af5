package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	hmocks "github.com/stpnv0/ExploreWithMe/internal/handler/mocks"
	"github.com/stpnv0/ExploreWithMe/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupStatsRouter(t *testing.T) (*hmocks.MockHitSvc, http.Handler) {
	t.Helper()
	hitSvc := hmocks.NewMockHitSvc(t)
	return hitSvc, router.InitStatsRouter("test", NewStatsHandler(hitSvc))
}

func TestStatsHandler_SaveHit(t *testing.T) {
	hitSvc, r := setupStatsRouter(t)

	hitSvc.EXPECT().
		Save(mock.Anything, domain.Hit{
			App:       "ewm-service",
			URI:       "/events/1",
			IP:        "192.0.2.1",
			Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}).
		Return(&domain.Hit{ID: 1}, nil)

	w := doJSON(t, r, http.MethodPost, "/hit", map[string]any{
		"app":       "ewm-service",
		"uri":       "/events/1",
		"ip":        "192.0.2.1",
		"timestamp": "2024-05-01 12:00:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestStatsHandler_SaveHit_BadIP(t *testing.T) {
	_, r := setupStatsRouter(t)

	w := doJSON(t, r, http.MethodPost, "/hit", map[string]any{
		"app": "ewm-service",
		"uri": "/events/1",
		"ip":  "not-an-ip",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsHandler_GetStats(t *testing.T) {
	hitSvc, r := setupStatsRouter(t)

	hitSvc.EXPECT().
		Stats(mock.Anything, domain.StatsQuery{
			Start:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			URIs:   []string{"/events/1", "/events/2"},
			Unique: true,
		}).
		Return([]domain.ViewStats{{App: "ewm-service", URI: "/events/1", Hits: 3}}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/stats?start=2020-01-01%2000:00:00&end=2030-01-01%2000:00:00&uris=/events/1&uris=/events/2&unique=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.EqualValues(t, 3, resp[0]["hits"])
}

func TestStatsHandler_GetStats_StartAfterEnd(t *testing.T) {
	hitSvc, r := setupStatsRouter(t)

	hitSvc.EXPECT().
		Stats(mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("start is after end"))

	w := doJSON(t, r, http.MethodGet, "/stats?start=2030-01-01%2000:00:00&end=2020-01-01%2000:00:00", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
