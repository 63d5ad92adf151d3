package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
)

// PickupLocationRepository is a PostgreSQL implementation of
// repository.PickupLocationRepository.
type PickupLocationRepository struct {
	q Querier
}

// NewPickupLocationRepository creates a new PostgreSQL pickup-location repository.
func NewPickupLocationRepository(db *sql.DB) *PickupLocationRepository {
	return &PickupLocationRepository{q: db}
}

// GetAll retrieves every pickup location.
func (r *PickupLocationRepository) GetAll(ctx context.Context) ([]domain.PickupLocation, error) {
	query := `SELECT id, name, address FROM pickup_locations ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.PickupLocation
	for rows.Next() {
		var l domain.PickupLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.Address); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// GetByID retrieves a pickup location by ID.
func (r *PickupLocationRepository) GetByID(ctx context.Context, id string) (*domain.PickupLocation, error) {
	query := `SELECT id, name, address FROM pickup_locations WHERE id = $1`

	var l domain.PickupLocation
	err := r.q.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name, &l.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
