package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

// HitRepository is the stats service's store. It owns its own database and
// talks to it through pgx directly.
type HitRepository struct {
	pool *pgxpool.Pool
}

func NewHitRepo(pool *pgxpool.Pool) *HitRepository {
	return &HitRepository{pool: pool}
}

func (r *HitRepository) Create(ctx context.Context, hit *domain.Hit) error {
	query := `INSERT INTO hits (app, uri, ip, created)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err := r.pool.QueryRow(ctx, query, hit.App, hit.URI, hit.IP, hit.Timestamp).Scan(&hit.ID)
	if err != nil {
		return fmt.Errorf("insert hit: %w", err)
	}

	return nil
}

// Stats counts hits per (app, uri) in [start, end]. Both bounds are inclusive:
// timestamps travel with second precision, so an exclusive end at "now" would
// miss a hit stored in the same second. An empty URI list means all URIs.
func (r *HitRepository) Stats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	count := "COUNT(ip)"
	if q.Unique {
		count = "COUNT(DISTINCT ip)"
	}

	uris := q.URIs
	if uris == nil {
		uris = []string{}
	}

	query := `SELECT app, uri, ` + count + ` AS hits
			  FROM hits
			  WHERE created BETWEEN $1 AND $2
			    AND (cardinality($3::text[]) = 0 OR uri = ANY($3::text[]))
			  GROUP BY app, uri
			  ORDER BY hits DESC`
	rows, err := r.pool.Query(ctx, query, q.Start, q.End, uris)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	res := make([]domain.ViewStats, 0)
	for rows.Next() {
		var s domain.ViewStats
		if err = rows.Scan(&s.App, &s.URI, &s.Hits); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
