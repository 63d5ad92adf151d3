package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
)

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

const vehicleColumns = "id, name, category, price_per_day, image_url, seats, fuel_type, transmission, available"

// GetAll retrieves the full vehicle catalog.
func (r *VehicleRepository) GetAll(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY name`
	return r.queryVehicles(ctx, query)
}

// GetAvailable retrieves only vehicles currently offered for rental.
func (r *VehicleRepository) GetAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE available ORDER BY name`
	return r.queryVehicles(ctx, query)
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	var v domain.Vehicle
	var imageURL sql.NullString

	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&v.ID,
		&v.Name,
		&v.Category,
		&v.PricePerDay,
		&imageURL,
		&v.Seats,
		&v.FuelType,
		&v.Transmission,
		&v.Available,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if imageURL.Valid {
		v.ImageURL = imageURL.String
	}
	return &v, nil
}

func (r *VehicleRepository) queryVehicles(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var imageURL sql.NullString
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Category,
			&v.PricePerDay,
			&imageURL,
			&v.Seats,
			&v.FuelType,
			&v.Transmission,
			&v.Available,
		); err != nil {
			return nil, err
		}
		if imageURL.Valid {
			v.ImageURL = imageURL.String
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
