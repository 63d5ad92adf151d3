package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/service"
)

func completeDriver() domain.DriverInfoUpdate {
	return domain.DriverInfoUpdate{
		FirstName:        strPtr("Anna"),
		LastName:         strPtr("Dubois"),
		Email:            strPtr("anna@example.com"),
		Phone:            strPtr("612345678"),
		IsOver25:         boolPtr(true),
		HasLicense2Years: boolPtr(true),
	}
}

func TestNextStepRequiresVehicle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMockSessionStore()
	vehicles := NewMockVehicleRepository()
	vehicles.AddVehicle(testVehicle())
	svc := service.NewBookingService(store, vehicles)

	if _, err := svc.NextStep(ctx, "session-1"); !errors.Is(err, service.ErrVehicleNotSelected) {
		t.Fatalf("NextStep without vehicle error = %v, expected ErrVehicleNotSelected", err)
	}

	if _, err := svc.SelectVehicle(ctx, "session-1", "veh-1"); err != nil {
		t.Fatalf("SelectVehicle: %v", err)
	}
	sel, err := svc.NextStep(ctx, "session-1")
	if err != nil {
		t.Fatalf("NextStep after vehicle selection: %v", err)
	}
	if sel.CurrentStep != domain.StepVehicle+1 {
		t.Errorf("step = %d, expected %d", sel.CurrentStep, domain.StepVehicle+1)
	}
}

func TestNextStepRequiresCompleteDriver(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMockSessionStore()
	vehicles := NewMockVehicleRepository()
	vehicles.AddVehicle(testVehicle())
	svc := service.NewBookingService(store, vehicles)

	if _, err := svc.SelectVehicle(ctx, "session-1", "veh-1"); err != nil {
		t.Fatalf("SelectVehicle: %v", err)
	}
	if _, err := svc.SetStep(ctx, "session-1", domain.StepDriverPayment); err != nil {
		t.Fatalf("SetStep: %v", err)
	}

	if _, err := svc.NextStep(ctx, "session-1"); !errors.Is(err, service.ErrDriverInfoIncomplete) {
		t.Fatalf("NextStep without driver info error = %v, expected ErrDriverInfoIncomplete", err)
	}

	if _, err := svc.SetDriverInfo(ctx, "session-1", completeDriver()); err != nil {
		t.Fatalf("SetDriverInfo: %v", err)
	}
	sel, err := svc.NextStep(ctx, "session-1")
	if err != nil {
		t.Fatalf("NextStep after driver info: %v", err)
	}
	if sel.CurrentStep != domain.StepDriverPayment+1 {
		t.Errorf("step = %d, expected %d", sel.CurrentStep, domain.StepDriverPayment+1)
	}
}

func TestNextStepClampsAtConfirmation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := service.NewBookingService(NewMockSessionStore(), NewMockVehicleRepository())

	if _, err := svc.SetStep(ctx, "session-1", domain.StepConfirmation); err != nil {
		t.Fatalf("SetStep: %v", err)
	}
	sel, err := svc.NextStep(ctx, "session-1")
	if err != nil {
		t.Fatalf("NextStep at final step: %v", err)
	}
	if sel.CurrentStep != domain.StepConfirmation {
		t.Errorf("step advanced past confirmation: %d", sel.CurrentStep)
	}
}

func TestPrevStepClampsAtFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := service.NewBookingService(NewMockSessionStore(), NewMockVehicleRepository())

	sel, err := svc.PrevStep(ctx, "session-1")
	if err != nil {
		t.Fatalf("PrevStep at first step: %v", err)
	}
	if sel.CurrentStep != domain.MinStep {
		t.Errorf("step moved before the first: %d", sel.CurrentStep)
	}
}

func TestPrevStepNeverValidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := service.NewBookingService(NewMockSessionStore(), NewMockVehicleRepository())

	// No vehicle, no driver info: going back must still succeed.
	if _, err := svc.SetStep(ctx, "session-1", domain.StepDriverPayment); err != nil {
		t.Fatalf("SetStep: %v", err)
	}
	sel, err := svc.PrevStep(ctx, "session-1")
	if err != nil {
		t.Fatalf("PrevStep: %v", err)
	}
	if sel.CurrentStep != domain.StepDriverPayment-1 {
		t.Errorf("step = %d, expected %d", sel.CurrentStep, domain.StepDriverPayment-1)
	}
}

func TestSetStepRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := service.NewBookingService(NewMockSessionStore(), NewMockVehicleRepository())

	if _, err := svc.SetStep(ctx, "session-1", domain.Step(0)); !errors.Is(err, service.ErrInvalidStep) {
		t.Errorf("SetStep(0) error = %v, expected ErrInvalidStep", err)
	}
	if _, err := svc.SetStep(ctx, "session-1", domain.MaxStep+1); !errors.Is(err, service.ErrInvalidStep) {
		t.Errorf("SetStep(max+1) error = %v, expected ErrInvalidStep", err)
	}
	sel, err := svc.SetStep(ctx, "session-1", domain.StepOptions)
	if err != nil {
		t.Fatalf("SetStep: %v", err)
	}
	if sel.CurrentStep != domain.StepOptions {
		t.Errorf("step = %d, expected %d", sel.CurrentStep, domain.StepOptions)
	}
}
