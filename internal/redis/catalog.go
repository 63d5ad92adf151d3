package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// CatalogCache is a read-through cache for the vehicle and pickup-location
// catalogs, which change rarely compared to how often they are browsed.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a new CatalogCache.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Cache TTL constants
const (
	VehicleCacheTTL  = 5 * time.Minute
	LocationCacheTTL = 30 * time.Minute
)

// Cache keys
const (
	vehiclesCacheKey  = "cache:vehicles"
	locationsCacheKey = "cache:locations"
)

// GetVehicles retrieves the cached vehicle catalog. Returns (nil, nil) on
// a cache miss.
func (c *CatalogCache) GetVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	data, err := c.client.Get(ctx, vehiclesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var vehicles []domain.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// SetVehicles stores the vehicle catalog in cache.
func (c *CatalogCache) SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error {
	data, err := json.Marshal(vehicles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, vehiclesCacheKey, data, VehicleCacheTTL).Err()
}

// GetLocations retrieves the cached pickup-location catalog. Returns
// (nil, nil) on a cache miss.
func (c *CatalogCache) GetLocations(ctx context.Context) ([]domain.PickupLocation, error) {
	data, err := c.client.Get(ctx, locationsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var locations []domain.PickupLocation
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// SetLocations stores the pickup-location catalog in cache.
func (c *CatalogCache) SetLocations(ctx context.Context, locations []domain.PickupLocation) error {
	data, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, locationsCacheKey, data, LocationCacheTTL).Err()
}

// InvalidateVehicles drops the cached vehicle catalog.
func (c *CatalogCache) InvalidateVehicles(ctx context.Context) error {
	return c.client.Del(ctx, vehiclesCacheKey).Err()
}

// InvalidateLocations drops the cached pickup-location catalog.
func (c *CatalogCache) InvalidateLocations(ctx context.Context) error {
	return c.client.Del(ctx, locationsCacheKey).Err()
}
