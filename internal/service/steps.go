package service

import (
	"context"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

// stepRequirement returns nil when the selection satisfies the given
// step's gate, or the rejection reason. The validity predicate lives in
// the state machine itself rather than being a convention the caller may
// forget: a transition either yields the next step or an error.
func stepRequirement(sel *domain.BookingSelection, step domain.Step) error {
	switch step {
	case domain.StepVehicle:
		if sel.Vehicle == nil {
			return ErrVehicleNotSelected
		}
	case domain.StepDriverPayment:
		if !sel.Driver.IsComplete() {
			return ErrDriverInfoIncomplete
		}
	}
	return nil
}

// NextStep advances the wizard by one step after validating the current
// step's gate against the selection. The step is clamped at the
// confirmation step.
func (s *BookingService) NextStep(ctx context.Context, sessionID string) (*domain.BookingSelection, error) {
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		if err := stepRequirement(sel, sel.CurrentStep); err != nil {
			return err
		}
		if sel.CurrentStep < domain.MaxStep {
			sel.CurrentStep++
		}
		return nil
	})
}

// PrevStep moves the wizard back by one step, clamped at the first step.
// Going back never requires validation.
func (s *BookingService) PrevStep(ctx context.Context, sessionID string) (*domain.BookingSelection, error) {
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		if sel.CurrentStep > domain.MinStep {
			sel.CurrentStep--
		}
		return nil
	})
}

// SetStep jumps directly to a step without gating, as when the booking
// widget seeds search params and drops the user at the start of the flow.
func (s *BookingService) SetStep(ctx context.Context, sessionID string, step domain.Step) (*domain.BookingSelection, error) {
	if !step.IsValid() {
		return nil, ErrInvalidStep
	}
	return s.mutate(ctx, sessionID, func(sel *domain.BookingSelection) error {
		sel.CurrentStep = step
		return nil
	})
}
