package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const commentColumns = `id, author_id, event_id, message, created, updated`

type CommentRepository struct {
	executor
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{executor: newExecutor(db)}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (` + commentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.exec(ctx, query, c.ID, c.AuthorID, c.EventID, c.Message, c.Created, c.Updated)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	err := r.execOne(ctx, domain.ErrCommentNotFound,
		`UPDATE comments SET message = $2, updated = $3 WHERE id = $1`,
		c.ID, c.Message, c.Updated,
	)
	if err != nil && !errors.Is(err, domain.ErrCommentNotFound) {
		return fmt.Errorf("update comment: %w", err)
	}
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	row, err := r.queryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	var c domain.Comment
	if err = row.Scan(&c.ID, &c.AuthorID, &c.EventID, &c.Message, &c.Created, &c.Updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}

	return &c, nil
}

// List filters by author and event when set; the date range is always applied.
func (r *CommentRepository) List(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]*domain.Comment, error) {
	var w where
	if f.AuthorID != "" {
		w.add("author_id = $%d", f.AuthorID)
	}
	if f.EventID != "" {
		w.add("event_id = $%d", f.EventID)
	}
	w.add("created >= $%d", f.Start)
	w.add("created <= $%d", f.End)

	query := `SELECT ` + commentColumns + ` FROM comments` + w.sql() + ` ORDER BY created DESC` + w.page(page)
	rows, err := r.query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err = rows.Scan(&c.ID, &c.AuthorID, &c.EventID, &c.Message, &c.Created, &c.Updated); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	err := r.execOne(ctx, domain.ErrCommentNotFound, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil && !errors.Is(err, domain.ErrCommentNotFound) {
		return fmt.Errorf("delete comment: %w", err)
	}
	return err
}
