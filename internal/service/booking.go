package service

import (
	"context"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/redis"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
)

// BookingService owns the in-progress booking selection for each session.
// Every mutator loads the selection, applies one change and explicitly
// saves it back, so the persistence side effect is visible and testable.
// Pricing is never pushed from here; callers recompute it on demand.
type BookingService struct {
	sessions    redis.SessionStoreInterface
	vehicleRepo repository.VehicleRepository
}

// NewBookingService creates a new BookingService.
func NewBookingService(sessions redis.SessionStoreInterface, vehicleRepo repository.VehicleRepository) *BookingService {
	return &BookingService{
		sessions:    sessions,
		vehicleRepo: vehicleRepo,
	}
}

// Get returns the session's selection, creating a default one on first use.
// A fresh selection is not persisted until the first mutation.
func (s *BookingService) Get(ctx context.Context, sessionID string) (*domain.BookingSelection, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	sel, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		sel = domain.NewBookingSelection()
	}
	return sel, nil
}

// SetSearchParams merges the given subset of search fields into the
// selection. Used to hydrate state from the booking widget's query string.
func (s *BookingService) SetSearchParams(ctx context.Context, sessionID string, params domain.SearchParams) (*domain.BookingSelection, error) {
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.ApplySearchParams(params)
		return nil
	})
}

// SelectVehicle snapshots the catalog entry with the given id into the
// selection. Unavailable vehicles are rejected.
func (s *BookingService) SelectVehicle(ctx context.Context, sessionID, vehicleID string) (*domain.BookingSelection, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Available {
		return nil, ErrVehicleUnavailable
	}
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.SetVehicle(vehicle)
		return nil
	})
}

// ClearVehicle removes the vehicle snapshot from the selection.
func (s *BookingService) ClearVehicle(ctx context.Context, sessionID string) (*domain.BookingSelection, error) {
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.SetVehicle(nil)
		return nil
	})
}

// SetPaymentOption replaces the payment option.
func (s *BookingService) SetPaymentOption(ctx context.Context, sessionID string, option domain.PaymentOption) (*domain.BookingSelection, error) {
	if !option.IsValid() {
		return nil, ErrInvalidPaymentOption
	}
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.PaymentOption = option
		return nil
	})
}

// SetMileageOption replaces the mileage option.
func (s *BookingService) SetMileageOption(ctx context.Context, sessionID string, option domain.MileageOption) (*domain.BookingSelection, error) {
	if !option.IsValid() {
		return nil, ErrInvalidMileageOption
	}
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.MileageOption = option
		return nil
	})
}

// SetProtectionLevel replaces the protection level.
func (s *BookingService) SetProtectionLevel(ctx context.Context, sessionID string, level domain.ProtectionLevel) (*domain.BookingSelection, error) {
	if !level.IsValid() {
		return nil, ErrInvalidProtectionLevel
	}
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.ProtectionLevel = level
		return nil
	})
}

// ToggleOption flips the enabled flag of one catalog option. An id outside
// the fixed catalog is rejected and leaves the selection untouched.
func (s *BookingService) ToggleOption(ctx context.Context, sessionID string, id domain.OptionID) (*domain.BookingSelection, error) {
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		if !sel.ToggleOption(id) {
			return ErrUnknownOption
		}
		return nil
	})
}

// SetDriverInfo shallow-merges the given fields into the driver record.
func (s *BookingService) SetDriverInfo(ctx context.Context, sessionID string, upd domain.DriverInfoUpdate) (*domain.BookingSelection, error) {
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.MergeDriverInfo(upd)
		return nil
	})
}

// SetPaymentMethod replaces the payment method.
func (s *BookingService) SetPaymentMethod(ctx context.Context, sessionID string, method domain.PaymentMethod) (*domain.BookingSelection, error) {
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.PaymentMethod = method
		return nil
	})
}

// Reset restores the selection to its defaults and persists the reset, so
// a reload after an explicit clear does not resurrect the old state.
func (s *BookingService) Reset(ctx context.Context, sessionID string) (*domain.BookingSelection, error) {
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.Reset()
		return nil
	})
}

// Clear drops the session's persisted selection entirely.
func (s *BookingService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	return s.sessions.Delete(ctx, sessionID)
}

// mutate loads the selection, applies fn and saves the result. The save is
// skipped when fn rejects the change, leaving the persisted state as it was.
func (s *BookingService) mutate(ctx context.Context, sessionID string, fn func(*domain.BookingSelection) error) (*domain.BookingSelection, error) {
	sel, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sel); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sessionID, sel); err != nil {
		return nil, err
	}
	return sel, nil
}
