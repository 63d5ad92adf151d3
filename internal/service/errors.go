package service

import "errors"

var (
	// ErrInvalidSessionID is returned when the booking session id is empty.
	ErrInvalidSessionID = errors.New("invalid session id")

	// ErrUnknownOption is returned when toggling an option id that is not
	// part of the fixed catalog.
	ErrUnknownOption = errors.New("unknown additional option")

	// ErrInvalidPaymentOption is returned when the payment option is not recognized.
	ErrInvalidPaymentOption = errors.New("invalid payment option")

	// ErrInvalidMileageOption is returned when the mileage option is not recognized.
	ErrInvalidMileageOption = errors.New("invalid mileage option")

	// ErrInvalidProtectionLevel is returned when the protection level is not recognized.
	ErrInvalidProtectionLevel = errors.New("invalid protection level")

	// ErrInvalidPaymentMethod is returned when the payment method is not recognized.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidStep is returned when jumping to a step outside the wizard range.
	ErrInvalidStep = errors.New("invalid wizard step")

	// ErrVehicleNotSelected is returned when leaving the vehicle step, or
	// submitting, without a selected vehicle.
	ErrVehicleNotSelected = errors.New("no vehicle selected")

	// ErrVehicleUnavailable is returned when selecting a vehicle that is not available.
	ErrVehicleUnavailable = errors.New("vehicle not available")

	// ErrDriverInfoIncomplete is returned when leaving the driver step, or
	// submitting, with a partial driver form.
	ErrDriverInfoIncomplete = errors.New("driver information incomplete")

	// ErrNoRentalPeriod is returned when submitting without both rental dates.
	ErrNoRentalPeriod = errors.New("no rental period selected")

	// ErrInvalidEmail is returned when the guest email is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidReservationID is returned when the reservation id is empty.
	ErrInvalidReservationID = errors.New("invalid reservation id")

	// ErrReservationLocked is returned when updating a cancelled or completed reservation.
	ErrReservationLocked = errors.New("reservation can no longer be modified")

	// ErrReservationAlreadyCancelled is returned when cancelling a reservation twice.
	ErrReservationAlreadyCancelled = errors.New("reservation already cancelled")

	// ErrReservationCompleted is returned when cancelling a completed reservation.
	ErrReservationCompleted = errors.New("completed reservation cannot be cancelled")

	// ErrCancellationWindowClosed is returned when cancelling less than 24h
	// before the rental starts.
	ErrCancellationWindowClosed = errors.New("cancellation no longer possible less than 24h before start")
)
