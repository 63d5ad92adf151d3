package repository

import (
	"context"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// VehicleRepository defines the read operations for the vehicle catalog.
type VehicleRepository interface {
	// GetAll retrieves the full vehicle catalog.
	GetAll(ctx context.Context) ([]domain.Vehicle, error)

	// GetAvailable retrieves only vehicles currently offered for rental.
	GetAvailable(ctx context.Context) ([]domain.Vehicle, error)

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}
