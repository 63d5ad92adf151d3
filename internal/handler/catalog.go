package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/redis"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
)

// CatalogHandler serves the vehicle and pickup-location catalogs, with a
// Redis read-through cache in front of postgres.
type CatalogHandler struct {
	vehicleRepo  repository.VehicleRepository
	locationRepo repository.PickupLocationRepository
	cache        redis.CatalogCacheInterface
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	vehicleRepo repository.VehicleRepository,
	locationRepo repository.PickupLocationRepository,
	cache redis.CatalogCacheInterface,
) *CatalogHandler {
	return &CatalogHandler{
		vehicleRepo:  vehicleRepo,
		locationRepo: locationRepo,
		cache:        cache,
	}
}

// GetVehicles handles GET /v1/vehicles
func (h *CatalogHandler) GetVehicles(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.cache.GetVehicles(ctx); err == nil && cached != nil {
		respondJSON(c, http.StatusOK, cached)
		return
	}

	vehicles, err := h.vehicleRepo.GetAvailable(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}

	_ = h.cache.SetVehicles(ctx, vehicles)

	respondJSON(c, http.StatusOK, vehicles)
}

// GetLocations handles GET /v1/locations
func (h *CatalogHandler) GetLocations(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.cache.GetLocations(ctx); err == nil && cached != nil {
		respondJSON(c, http.StatusOK, cached)
		return
	}

	locations, err := h.locationRepo.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if locations == nil {
		locations = []domain.PickupLocation{}
	}

	_ = h.cache.SetLocations(ctx, locations)

	respondJSON(c, http.StatusOK, locations)
}

// GetOptions handles GET /v1/options — the fixed additional-option catalog.
func (h *CatalogHandler) GetOptions(c *gin.Context) {
	respondJSON(c, http.StatusOK, domain.OptionCatalog)
}
