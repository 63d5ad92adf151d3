package redis

import (
	"context"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// SessionStoreInterface defines the persistence operations for in-progress
// booking selections.
type SessionStoreInterface interface {
	Save(ctx context.Context, sessionID string, sel *domain.BookingSelection) error
	Load(ctx context.Context, sessionID string) (*domain.BookingSelection, error)
	Delete(ctx context.Context, sessionID string) error
}

// CatalogCacheInterface defines the caching operations for the vehicle and
// pickup-location catalogs.
type CatalogCacheInterface interface {
	GetVehicles(ctx context.Context) ([]domain.Vehicle, error)
	SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error
	GetLocations(ctx context.Context) ([]domain.PickupLocation, error)
	SetLocations(ctx context.Context, locations []domain.PickupLocation) error
	InvalidateVehicles(ctx context.Context) error
	InvalidateLocations(ctx context.Context) error
}

// Ensure concrete types implement interfaces.
var (
	_ SessionStoreInterface = (*SessionStore)(nil)
	_ CatalogCacheInterface = (*CatalogCache)(nil)
)
