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

type CompilationRepository struct {
	executor
	tx *TxManager
}

func NewCompilationRepo(db *dbpg.DB, tx *TxManager) *CompilationRepository {
	return &CompilationRepository{executor: newExecutor(db), tx: tx}
}

func (r *CompilationRepository) Create(ctx context.Context, c *domain.Compilation, eventIDs []string) error {
	return r.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := r.exec(ctx,
			`INSERT INTO compilations (id, title, pinned) VALUES ($1, $2, $3)`,
			c.ID, c.Title, c.Pinned,
		)
		if err != nil {
			if isPgCode(err, uniqueViolation) {
				return domain.ErrCompilationTitle
			}
			return fmt.Errorf("insert compilation: %w", err)
		}

		return r.linkEvents(ctx, c.ID, eventIDs)
	})
}

// Update rewrites title and pinned; a non-nil eventIDs replaces the event set.
func (r *CompilationRepository) Update(ctx context.Context, c *domain.Compilation, eventIDs []string) error {
	return r.tx.WithinTx(ctx, func(ctx context.Context) error {
		err := r.execOne(ctx, domain.ErrCompilationNotFound,
			`UPDATE compilations SET title = $2, pinned = $3 WHERE id = $1`,
			c.ID, c.Title, c.Pinned,
		)
		switch {
		case errors.Is(err, domain.ErrCompilationNotFound):
			return err
		case isPgCode(err, uniqueViolation):
			return domain.ErrCompilationTitle
		case err != nil:
			return fmt.Errorf("update compilation: %w", err)
		}

		if eventIDs == nil {
			return nil
		}
		if _, err = r.exec(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, c.ID); err != nil {
			return fmt.Errorf("clear compilation events: %w", err)
		}
		return r.linkEvents(ctx, c.ID, eventIDs)
	})
}

func (r *CompilationRepository) linkEvents(ctx context.Context, compilationID string, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	query := `INSERT INTO compilation_events (compilation_id, event_id)
			  SELECT $1, unnest($2::uuid[])
			  ON CONFLICT DO NOTHING`
	if _, err := r.exec(ctx, query, compilationID, pq.Array(eventIDs)); err != nil {
		if isPgCode(err, foreignKeyViolation) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("link compilation events: %w", err)
	}

	return nil
}

func (r *CompilationRepository) GetByID(ctx context.Context, id string) (*domain.Compilation, []string, error) {
	row, err := r.queryRow(ctx, `SELECT id, title, pinned FROM compilations WHERE id = $1`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get compilation: %w", err)
	}

	var c domain.Compilation
	if err = row.Scan(&c.ID, &c.Title, &c.Pinned); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrCompilationNotFound
		}
		return nil, nil, fmt.Errorf("scan compilation: %w", err)
	}

	ids, err := r.EventIDs(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return &c, ids, nil
}

func (r *CompilationRepository) List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error) {
	query := `SELECT id, title, pinned FROM compilations
			  WHERE $1::boolean IS NULL OR pinned = $1
			  ORDER BY title, id
			  LIMIT $2 OFFSET $3`
	rows, err := r.query(ctx, query, pinned, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Compilation
	for rows.Next() {
		var c domain.Compilation
		if err = rows.Scan(&c.ID, &c.Title, &c.Pinned); err != nil {
			return nil, fmt.Errorf("scan compilation: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CompilationRepository) EventIDs(ctx context.Context, compilationID string) ([]string, error) {
	rows, err := r.query(ctx,
		`SELECT event_id FROM compilation_events WHERE compilation_id = $1`, compilationID)
	if err != nil {
		return nil, fmt.Errorf("list compilation events: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan compilation event: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *CompilationRepository) Delete(ctx context.Context, id string) error {
	err := r.execOne(ctx, domain.ErrCompilationNotFound, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil && !errors.Is(err, domain.ErrCompilationNotFound) {
		return fmt.Errorf("delete compilation: %w", err)
	}
	return err
}
