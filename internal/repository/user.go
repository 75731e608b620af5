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

type UserRepository struct {
	executor
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{executor: newExecutor(db)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email)
 			  VALUES ($1, $2, $3)`
	_, err := r.exec(ctx, query, user.ID, user.Name, user.Email)
	if err != nil {
		if isPgCode(err, uniqueViolation) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email
    		  FROM users
    		  WHERE id=$1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

// List returns users ordered by name; an empty ids slice means all users.
func (r *UserRepository) List(ctx context.Context, ids []string, page domain.Page) ([]*domain.User, error) {
	query := `SELECT id, name, email
			  FROM users
			  WHERE cardinality($1::uuid[]) = 0 OR id = ANY($1::uuid[])
			  ORDER BY name, id
			  LIMIT $2 OFFSET $3`

	if ids == nil {
		ids = []string{}
	}
	rows, err := r.query(ctx, query, pq.Array(ids), page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.execOne(ctx, domain.ErrUserNotFound, `DELETE FROM users WHERE id = $1`, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
