package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the current state of a submitted reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// validTransitions defines the reservation lifecycle state machine.
var validTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCompleted, ReservationCancelled},
	ReservationConfirmed: {ReservationCompleted, ReservationCancelled},
	ReservationCompleted: {},
	ReservationCancelled: {},
}

// IsValid returns true if the status is a recognized reservation status.
func (s ReservationStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the
// target is allowed.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible.
func (s ReservationStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// CanBeCancelled returns true if the reservation can still be cancelled
// from this status.
func (s ReservationStatus) CanBeCancelled() bool {
	return s.CanTransitionTo(ReservationCancelled)
}

// String returns the string representation of the status.
func (s ReservationStatus) String() string {
	return string(s)
}

// ParseReservationStatus converts a string to a ReservationStatus,
// returning an error if invalid.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid reservation status: %s", s)
	}
	return status, nil
}

// Reservation is a submitted booking as stored by the persistence layer.
// Guests manage it by reservation id + email, without an account.
type Reservation struct {
	ID               string
	UserID           string // empty for guest reservations
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	PickupLocationID string
	StartDate        string // "2006-01-02"
	EndDate          string
	TotalPrice       float64
	Notes            string
	Status           ReservationStatus
	CreatedAt        time.Time
}

// ReservationDetail is a reservation joined with its pickup location and
// reserved vehicles, as returned to guests looking up their booking.
type ReservationDetail struct {
	Reservation
	PickupLocation *PickupLocation
	Vehicles       []Vehicle
}
