package repository

import (
	"context"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// PickupLocationRepository defines the read operations for agencies.
type PickupLocationRepository interface {
	// GetAll retrieves every pickup location.
	GetAll(ctx context.Context) ([]domain.PickupLocation, error)

	// GetByID retrieves a pickup location by ID.
	GetByID(ctx context.Context, id string) (*domain.PickupLocation, error)
}
