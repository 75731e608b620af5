package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type CategoryRepository struct {
	executor
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{executor: newExecutor(db)}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	_, err := r.exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	if err != nil {
		if isPgCode(err, uniqueViolation) {
			return domain.ErrCategoryNameTaken
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	err := r.execOne(ctx, domain.ErrCategoryNotFound,
		`UPDATE categories SET name = $2 WHERE id = $1`, c.ID, c.Name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCategoryNotFound):
		return err
	case isPgCode(err, uniqueViolation):
		return domain.ErrCategoryNameTaken
	default:
		return fmt.Errorf("update category: %w", err)
	}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row, err := r.queryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	if err = row.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, page domain.Page) ([]*domain.Category, error) {
	rows, err := r.query(ctx,
		`SELECT id, name FROM categories ORDER BY name LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	err := r.execOne(ctx, domain.ErrCategoryNotFound, `DELETE FROM categories WHERE id = $1`, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCategoryNotFound):
		return err
	case isPgCode(err, foreignKeyViolation):
		return domain.ErrCategoryInUse
	default:
		return fmt.Errorf("delete category: %w", err)
	}
}
