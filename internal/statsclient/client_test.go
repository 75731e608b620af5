package statsclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

func testStrategy() retry.Strategy {
	return retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}
}

func TestClient_Hit(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second, testStrategy())
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	err := c.Hit(context.Background(), domain.Hit{App: "ewm-service", URI: "/events/1", IP: "1.2.3.4", Timestamp: ts})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"app":       "ewm-service",
		"uri":       "/events/1",
		"ip":        "1.2.3.4",
		"timestamp": "2026-03-04 05:06:07",
	}, got)
}

func TestClient_Stats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/stats", r.URL.Path)
		assert.Equal(t, "1970-01-01 00:00:00", q.Get("start"))
		assert.Equal(t, "true", q.Get("unique"))
		assert.Equal(t, []string{"/events/1", "/events/2"}, q["uris"])
		_ = json.NewEncoder(w).Encode([]domain.ViewStats{{App: "ewm-service", URI: "/events/1", Hits: 4}})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, testStrategy())

	stats, err := c.Stats(context.Background(), domain.StatsQuery{
		Start:  time.Unix(0, 0).UTC(),
		End:    time.Now().UTC(),
		URIs:   []string{"/events/1", "/events/2"},
		Unique: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.ViewStats{{App: "ewm-service", URI: "/events/1", Hits: 4}}, stats)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, testStrategy())

	err := c.Hit(context.Background(), domain.Hit{App: "a", URI: "/", IP: "ip", Timestamp: time.Now()})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad start", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, testStrategy())

	_, err := c.Stats(context.Background(), domain.StatsQuery{Start: time.Now(), End: time.Now()})

	require.Error(t, err)
	assert.ErrorIs(t, err, errClient)
	assert.Equal(t, int32(1), calls.Load())
}
