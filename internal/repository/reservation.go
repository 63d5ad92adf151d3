package repository

import (
	"context"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// GuestUpdate carries the only reservation fields guests may change; nil
// fields are left untouched.
type GuestUpdate struct {
	GuestName  *string
	GuestPhone *string
	Notes      *string
}

// ReservationRepository defines the persistence operations for reservations.
type ReservationRepository interface {
	// Create persists a new reservation together with its vehicle links,
	// atomically.
	Create(ctx context.Context, res *domain.Reservation, vehicleIDs []string) error

	// GetByID retrieves a reservation by ID.
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)

	// GetDetailByIDAndEmail retrieves a reservation with its pickup location
	// and vehicles, matching both the id and the guest email.
	GetDetailByIDAndEmail(ctx context.Context, id, email string) (*domain.ReservationDetail, error)

	// UpdateGuestDetails applies the non-nil guest-editable fields.
	UpdateGuestDetails(ctx context.Context, id string, upd GuestUpdate) error

	// UpdateStatus sets the reservation status.
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}
