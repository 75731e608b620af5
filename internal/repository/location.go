package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type LocationRepository struct {
	executor
}

func NewLocationRepo(db *dbpg.DB) *LocationRepository {
	return &LocationRepository{executor: newExecutor(db)}
}

// Save inserts a location without an id and overwrites an existing one otherwise.
func (r *LocationRepository) Save(ctx context.Context, loc *domain.Location) error {
	if loc.ID == "" {
		loc.ID = uuid.New().String()
	}

	query := `INSERT INTO locations (id, lat, lon)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (id) DO UPDATE SET lat = EXCLUDED.lat, lon = EXCLUDED.lon`
	if _, err := r.exec(ctx, query, loc.ID, loc.Lat, loc.Lon); err != nil {
		return fmt.Errorf("save location: %w", err)
	}

	return nil
}
