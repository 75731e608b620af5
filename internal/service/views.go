package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// DefaultAppName is the app the main service reports its hits under.
const DefaultAppName = "ewm-service"

// viewsSince is the lower bound of every views query.
var viewsSince = time.Unix(0, 0).UTC()

// ViewService keeps events' cached views in line with the stats service.
// Stats failures never fail the caller; they are logged and the stored
// views are kept.
type ViewService struct {
	stats     ports.StatsClient
	eventRepo ports.EventRepo
	app       string
	batchSize int
	logger    logger.Logger
}

func NewViewService(
	stats ports.StatsClient,
	eventRepo ports.EventRepo,
	app string,
	batchSize int,
	logger logger.Logger,
) *ViewService {
	if app == "" {
		app = DefaultAppName
	}
	if batchSize <= 0 {
		batchSize = domain.DefaultPageSize
	}

	return &ViewService{
		stats:     stats,
		eventRepo: eventRepo,
		app:       app,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (s *ViewService) RecordView(ctx context.Context, uri, ip string) {
	hit := domain.Hit{
		App:       s.app,
		URI:       uri,
		IP:        ip,
		Timestamp: time.Now().UTC(),
	}

	if err := s.stats.Hit(ctx, hit); err != nil {
		s.logger.Warn("failed to record view",
			logger.String("uri", uri),
			logger.String("error", err.Error()),
		)
	}
}

// Refresh sets the views of the given events with one stats query and
// stores them.
func (s *ViewService) Refresh(ctx context.Context, events ...*domain.Event) {
	if len(events) == 0 {
		return
	}

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	views, err := s.fetch(ctx, ids)
	if err != nil {
		s.logger.Warn("failed to fetch views",
			logger.Int("events", len(events)),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range events {
		e.Views = views[e.ID]
	}

	if err = s.eventRepo.UpdateViews(ctx, views); err != nil {
		s.logger.Warn("failed to store views",
			logger.Int("events", len(events)),
			logger.String("error", err.Error()),
		)
	}
}

// RefreshPublished walks all published events page by page and stores their
// views. It returns how many events were refreshed.
func (s *ViewService) RefreshPublished(ctx context.Context) (int, error) {
	total := 0
	for from := 0; ; from += s.batchSize {
		ids, err := s.eventRepo.ListPublishedIDs(ctx, domain.Page{From: from, Size: s.batchSize})
		if err != nil {
			return total, fmt.Errorf("list published events: %w", err)
		}
		if len(ids) == 0 {
			return total, nil
		}

		views, err := s.fetch(ctx, ids)
		if err != nil {
			return total, err
		}
		if err = s.eventRepo.UpdateViews(ctx, views); err != nil {
			return total, fmt.Errorf("store views: %w", err)
		}
		total += len(ids)

		if len(ids) < s.batchSize {
			return total, nil
		}
	}
}

// fetch returns unique-ip views per event id; events without hits get 0.
func (s *ViewService) fetch(ctx context.Context, ids []string) (map[string]int64, error) {
	uris := make([]string, len(ids))
	for i, id := range ids {
		uris[i] = domain.EventURI(id)
	}

	stats, err := s.stats.Stats(ctx, domain.StatsQuery{
		Start:  viewsSince,
		End:    time.Now().UTC(),
		URIs:   uris,
		Unique: true,
	})
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	hits := make(map[string]int64, len(stats))
	for _, st := range stats {
		hits[st.URI] += st.Hits
	}

	views := make(map[string]int64, len(ids))
	for i, id := range ids {
		views[id] = hits[uris[i]]
	}

	return views, nil
}
