package tests

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/repository"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/service"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewBookingSelectionDefaults(t *testing.T) {
	t.Parallel()

	sel := domain.NewBookingSelection()

	if sel.StartTime != "09:00" || sel.EndTime != "09:00" {
		t.Errorf("default times = %q/%q, expected 09:00/09:00", sel.StartTime, sel.EndTime)
	}
	if sel.PaymentOption != domain.PaymentOptionBestPrice {
		t.Errorf("default payment option = %q, expected best_price", sel.PaymentOption)
	}
	if sel.MileageOption != domain.MileageIncluded {
		t.Errorf("default mileage option = %q, expected included", sel.MileageOption)
	}
	if sel.ProtectionLevel != domain.ProtectionNone {
		t.Errorf("default protection level = %q, expected none", sel.ProtectionLevel)
	}
	if sel.PaymentMethod != domain.PaymentMethodCard {
		t.Errorf("default payment method = %q, expected card", sel.PaymentMethod)
	}
	if sel.Driver.CountryCode != "+33" {
		t.Errorf("default country code = %q, expected +33", sel.Driver.CountryCode)
	}
	if sel.CurrentStep != domain.StepVehicle {
		t.Errorf("default step = %d, expected %d", sel.CurrentStep, domain.StepVehicle)
	}
	if sel.Vehicle != nil {
		t.Error("default selection should have no vehicle")
	}
	if len(sel.Options) != len(domain.OptionCatalog) {
		t.Fatalf("default option map has %d entries, expected %d", len(sel.Options), len(domain.OptionCatalog))
	}
	for _, spec := range domain.OptionCatalog {
		enabled, ok := sel.Options[spec.ID]
		if !ok {
			t.Errorf("option %q missing from default map", spec.ID)
		}
		if enabled {
			t.Errorf("option %q enabled by default", spec.ID)
		}
	}
}

func TestApplySearchParamsPartialMerge(t *testing.T) {
	t.Parallel()

	sel := domain.NewBookingSelection()
	sel.PickupLocationID = "loc-1"
	sel.StartDate = "2026-07-01"

	sel.ApplySearchParams(domain.SearchParams{
		EndDate:   strPtr("2026-07-05"),
		StartTime: strPtr("10:00"),
	})

	if sel.PickupLocationID != "loc-1" {
		t.Errorf("unset field overwritten: pickup = %q", sel.PickupLocationID)
	}
	if sel.StartDate != "2026-07-01" {
		t.Errorf("unset field overwritten: start date = %q", sel.StartDate)
	}
	if sel.EndDate != "2026-07-05" {
		t.Errorf("end date = %q, expected 2026-07-05", sel.EndDate)
	}
	if sel.StartTime != "10:00" {
		t.Errorf("start time = %q, expected 10:00", sel.StartTime)
	}
	if sel.EndTime != "09:00" {
		t.Errorf("end time changed without being set: %q", sel.EndTime)
	}
}

func TestSetVehicleSnapshots(t *testing.T) {
	t.Parallel()

	sel := domain.NewBookingSelection()
	v := testVehicle()
	sel.SetVehicle(v)

	v.PricePerDay = 999
	if sel.Vehicle.PricePerDay != 40 {
		t.Errorf("selection tracks the catalog entry instead of a snapshot: price = %v", sel.Vehicle.PricePerDay)
	}

	sel.SetVehicle(nil)
	if sel.Vehicle != nil {
		t.Error("SetVehicle(nil) did not clear the selection")
	}
}

func TestToggleOptionUnknownID(t *testing.T) {
	t.Parallel()

	sel := domain.NewBookingSelection()
	before := make(map[domain.OptionID]bool, len(sel.Options))
	for id, enabled := range sel.Options {
		before[id] = enabled
	}

	if sel.ToggleOption("nonexistent_id") {
		t.Error("ToggleOption accepted an id outside the catalog")
	}
	if !reflect.DeepEqual(sel.Options, before) {
		t.Error("rejected toggle mutated the option map")
	}
	if len(sel.Options) != len(domain.OptionCatalog) {
		t.Errorf("option map grew to %d entries", len(sel.Options))
	}
}

func TestToggleOptionFlips(t *testing.T) {
	t.Parallel()

	sel := domain.NewBookingSelection()

	if !sel.ToggleOption(domain.OptionBabySeat) {
		t.Fatal("ToggleOption rejected a catalog id")
	}
	if !sel.Options[domain.OptionBabySeat] {
		t.Error("option not enabled after toggle")
	}
	if !sel.ToggleOption(domain.OptionBabySeat) {
		t.Fatal("second toggle rejected")
	}
	if sel.Options[domain.OptionBabySeat] {
		t.Error("option not disabled after second toggle")
	}
}

func TestMergeDriverInfoPartial(t *testing.T) {
	t.Parallel()

	sel := domain.NewBookingSelection()
	sel.MergeDriverInfo(domain.DriverInfoUpdate{
		FirstName: strPtr("Anna"),
		Email:     strPtr("anna@example.com"),
		IsOver25:  boolPtr(true),
	})

	if sel.Driver.FirstName != "Anna" || sel.Driver.Email != "anna@example.com" || !sel.Driver.IsOver25 {
		t.Errorf("merge did not apply set fields: %+v", sel.Driver)
	}
	if sel.Driver.CountryCode != "+33" {
		t.Errorf("merge clobbered country code: %q", sel.Driver.CountryCode)
	}
	if sel.Driver.IsComplete() {
		t.Error("partial driver info reported complete")
	}

	sel.MergeDriverInfo(domain.DriverInfoUpdate{
		LastName:         strPtr("Dubois"),
		Phone:            strPtr("612345678"),
		HasLicense2Years: boolPtr(true),
	})
	if !sel.Driver.IsComplete() {
		t.Errorf("full driver info reported incomplete: %+v", sel.Driver)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	sel := domain.NewBookingSelection()
	sel.StartDate = "2026-07-01"
	sel.EndDate = "2026-07-04"
	sel.SetVehicle(testVehicle())
	sel.ProtectionLevel = domain.ProtectionComplete
	sel.ToggleOption(domain.OptionTireGlass)
	sel.CurrentStep = domain.StepConfirmation

	sel.Reset()

	if !reflect.DeepEqual(sel, domain.NewBookingSelection()) {
		t.Errorf("Reset() left non-default state: %+v", sel)
	}
}

func TestBookingServiceSelectVehicle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMockSessionStore()
	vehicles := NewMockVehicleRepository()
	vehicles.AddVehicle(testVehicle())
	vehicles.AddVehicle(&domain.Vehicle{ID: "veh-2", Name: "Parked", PricePerDay: 30, Available: false})

	svc := service.NewBookingService(store, vehicles)

	sel, err := svc.SelectVehicle(ctx, "session-1", "veh-1")
	if err != nil {
		t.Fatalf("SelectVehicle: %v", err)
	}
	if sel.Vehicle == nil || sel.Vehicle.ID != "veh-1" {
		t.Fatalf("vehicle not selected: %+v", sel.Vehicle)
	}
	if !store.HasSession("session-1") {
		t.Error("selection not persisted after mutation")
	}

	if _, err := svc.SelectVehicle(ctx, "session-1", "veh-2"); !errors.Is(err, service.ErrVehicleUnavailable) {
		t.Errorf("unavailable vehicle error = %v, expected ErrVehicleUnavailable", err)
	}
	if _, err := svc.SelectVehicle(ctx, "session-1", "veh-404"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("missing vehicle error = %v, expected ErrNotFound", err)
	}
}

func TestBookingServiceGetDoesNotPersist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMockSessionStore()
	svc := service.NewBookingService(store, NewMockVehicleRepository())

	sel, err := svc.Get(ctx, "fresh-session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sel == nil {
		t.Fatal("Get returned nil selection for a fresh session")
	}
	if store.HasSession("fresh-session") {
		t.Error("read-only Get persisted a session")
	}
	if store.SaveCallCount != 0 {
		t.Errorf("Get triggered %d saves", store.SaveCallCount)
	}
}

func TestBookingServiceRejectsInvalidEnums(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMockSessionStore()
	svc := service.NewBookingService(store, NewMockVehicleRepository())

	if _, err := svc.SetPaymentOption(ctx, "s", "installments"); !errors.Is(err, service.ErrInvalidPaymentOption) {
		t.Errorf("SetPaymentOption error = %v", err)
	}
	if _, err := svc.SetMileageOption(ctx, "s", "infinite"); !errors.Is(err, service.ErrInvalidMileageOption) {
		t.Errorf("SetMileageOption error = %v", err)
	}
	if _, err := svc.SetProtectionLevel(ctx, "s", "platinum"); !errors.Is(err, service.ErrInvalidProtectionLevel) {
		t.Errorf("SetProtectionLevel error = %v", err)
	}
	if _, err := svc.SetPaymentMethod(ctx, "s", "cheque"); !errors.Is(err, service.ErrInvalidPaymentMethod) {
		t.Errorf("SetPaymentMethod error = %v", err)
	}
	if store.SaveCallCount != 0 {
		t.Errorf("rejected mutations still saved %d times", store.SaveCallCount)
	}
}

func TestBookingServiceToggleUnknownOptionNotSaved(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMockSessionStore()
	svc := service.NewBookingService(store, NewMockVehicleRepository())

	if _, err := svc.ToggleOption(ctx, "session-1", "jet_ski"); !errors.Is(err, service.ErrUnknownOption) {
		t.Fatalf("ToggleOption error = %v, expected ErrUnknownOption", err)
	}
	if store.HasSession("session-1") {
		t.Error("rejected toggle persisted the session")
	}
}

func TestBookingServiceEmptySessionID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := service.NewBookingService(NewMockSessionStore(), NewMockVehicleRepository())

	if _, err := svc.Get(ctx, ""); !errors.Is(err, service.ErrInvalidSessionID) {
		t.Errorf("Get with empty session id error = %v", err)
	}
	if err := svc.Clear(ctx, ""); !errors.Is(err, service.ErrInvalidSessionID) {
		t.Errorf("Clear with empty session id error = %v", err)
	}
}

func TestBookingServiceClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMockSessionStore()
	svc := service.NewBookingService(store, NewMockVehicleRepository())

	if _, err := svc.SetProtectionLevel(ctx, "session-1", domain.ProtectionBasic); err != nil {
		t.Fatalf("SetProtectionLevel: %v", err)
	}
	if err := svc.Clear(ctx, "session-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if store.HasSession("session-1") {
		t.Error("session survived Clear")
	}
}
