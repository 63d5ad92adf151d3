package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/redis"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
)

// Guests may cancel up to this long before the rental starts.
const cancellationCutoff = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ReservationService submits finished bookings and manages guest access to
// existing reservations.
type ReservationService struct {
	reservationRepo repository.ReservationRepository
	sessions        redis.SessionStoreInterface
	pricing         *PricingService
	notifications   *NotificationService
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	reservationRepo repository.ReservationRepository,
	sessions redis.SessionStoreInterface,
	pricing *PricingService,
	notifications *NotificationService,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		sessions:        sessions,
		pricing:         pricing,
		notifications:   notifications,
	}
}

// Submit turns the session's selection into a persisted reservation. On
// success the session is cleared so the wizard starts over; on any failure
// the selection is left untouched for the user to retry.
func (s *ReservationService) Submit(ctx context.Context, sessionID string) (*domain.Reservation, error) {
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

	if sel.StartDate == "" || sel.EndDate == "" {
		return nil, ErrNoRentalPeriod
	}
	if sel.Vehicle == nil {
		return nil, ErrVehicleNotSelected
	}
	if !sel.Driver.IsComplete() {
		return nil, ErrDriverInfoIncomplete
	}

	email := strings.ToLower(strings.TrimSpace(sel.Driver.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	res := &domain.Reservation{
		ID:               uuid.New().String(),
		GuestName:        sel.Driver.FirstName + " " + sel.Driver.LastName,
		GuestEmail:       email,
		GuestPhone:       sel.Driver.CountryCode + sel.Driver.Phone,
		PickupLocationID: sel.PickupLocationID,
		StartDate:        sel.StartDate,
		EndDate:          sel.EndDate,
		TotalPrice:       s.pricing.Total(sel),
		Notes: fmt.Sprintf("Protection: %s, Payment: %s, Mileage: %s",
			sel.ProtectionLevel, sel.PaymentOption, sel.MileageOption),
		Status:    domain.ReservationPending,
		CreatedAt: time.Now(),
	}

	if err := s.reservationRepo.Create(ctx, res, []string{sel.Vehicle.ID}); err != nil {
		return nil, err
	}

	// The booking is only cleared once the reservation is safely stored.
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		log.Printf("failed to clear booking session %s: %v", sessionID, err)
	}

	_ = s.notifications.NotifyReservationCreated(ctx, res)

	return res, nil
}

// GetGuestReservation looks up a reservation by id and guest email. The
// email match is the only authorization check for guest access.
func (s *ReservationService) GetGuestReservation(ctx context.Context, reservationID, email string) (*domain.ReservationDetail, error) {
	normalized, err := s.validateGuestLookup(reservationID, email)
	if err != nil {
		return nil, err
	}
	return s.reservationRepo.GetDetailByIDAndEmail(ctx, reservationID, normalized)
}

// UpdateGuestReservation applies guest-editable fields (name, phone,
// notes) to a reservation that is not cancelled or completed.
func (s *ReservationService) UpdateGuestReservation(ctx context.Context, reservationID, email string, upd repository.GuestUpdate) (*domain.ReservationDetail, error) {
	normalized, err := s.validateGuestLookup(reservationID, email)
	if err != nil {
		return nil, err
	}

	detail, err := s.reservationRepo.GetDetailByIDAndEmail(ctx, reservationID, normalized)
	if err != nil {
		return nil, err
	}

	if detail.Status.IsTerminal() {
		return nil, ErrReservationLocked
	}

	if upd.GuestName != nil || upd.GuestPhone != nil || upd.Notes != nil {
		if err := s.reservationRepo.UpdateGuestDetails(ctx, reservationID, upd); err != nil {
			return nil, err
		}
	}

	return s.reservationRepo.GetDetailByIDAndEmail(ctx, reservationID, normalized)
}

// CancelGuestReservation cancels a reservation unless it is already
// terminal or starts within the cancellation cutoff.
func (s *ReservationService) CancelGuestReservation(ctx context.Context, reservationID, email string) error {
	normalized, err := s.validateGuestLookup(reservationID, email)
	if err != nil {
		return err
	}

	detail, err := s.reservationRepo.GetDetailByIDAndEmail(ctx, reservationID, normalized)
	if err != nil {
		return err
	}

	switch detail.Status {
	case domain.ReservationCancelled:
		return ErrReservationAlreadyCancelled
	case domain.ReservationCompleted:
		return ErrReservationCompleted
	}

	start, err := time.Parse(dateLayout, detail.StartDate)
	if err == nil && time.Until(start) < cancellationCutoff {
		return ErrCancellationWindowClosed
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationCancelled); err != nil {
		return err
	}

	_ = s.notifications.NotifyReservationCancelled(ctx, &detail.Reservation)

	return nil
}

func (s *ReservationService) validateGuestLookup(reservationID, email string) (string, error) {
	if reservationID == "" {
		return "", ErrInvalidReservationID
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(normalized) {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
