package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const requestColumns = `id, requester_id, event_id, created, status`

type RequestRepository struct {
	executor
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{executor: newExecutor(db)}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (` + requestColumns + `)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.exec(ctx, query, req.ID, req.RequesterID, req.EventID, req.Created, req.Status)
	if err != nil {
		if isPgCode(err, uniqueViolation) {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	return r.get(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
}

func (r *RequestRepository) GetByRequesterAndEvent(ctx context.Context, requesterID, eventID string) (*domain.Request, error) {
	return r.get(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE requester_id = $1 AND event_id = $2`,
		requesterID, eventID,
	)
}

func (r *RequestRepository) get(ctx context.Context, query string, args ...any) (*domain.Request, error) {
	row, err := r.queryRow(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.Request
	if err = row.Scan(&req.ID, &req.RequesterID, &req.EventID, &req.Created, &req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

func (r *RequestRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Request, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = ANY($1::uuid[])`, pq.Array(ids))
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error) {
	return r.list(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE requester_id = $1 ORDER BY created DESC`,
		requesterID,
	)
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error) {
	return r.list(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE event_id = $1 ORDER BY created`,
		eventID,
	)
}

func (r *RequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Request
	for rows.Next() {
		var req domain.Request
		if err = rows.Scan(&req.ID, &req.RequesterID, &req.EventID, &req.Created, &req.Status); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, req *domain.Request) error {
	err := r.execOne(ctx, domain.ErrRequestNotFound,
		`UPDATE requests SET status = $2 WHERE id = $1`, req.ID, req.Status)
	if err != nil && !errors.Is(err, domain.ErrRequestNotFound) {
		return fmt.Errorf("update request status: %w", err)
	}
	return err
}

func (r *RequestRepository) CountByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) (int, error) {
	row, err := r.queryRow(ctx,
		`SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`,
		eventID, status,
	)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan request count: %w", err)
	}

	return n, nil
}
