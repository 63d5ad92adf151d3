package tests

import (
	"math"
	"testing"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/service"
)

const priceEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < priceEpsilon
}

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:           "veh-1",
		Name:         "Renault Clio",
		Category:     "economy",
		PricePerDay:  40,
		Seats:        5,
		FuelType:     "petrol",
		Transmission: "manual",
		Available:    true,
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	testCases := []struct {
		name      string
		startDate string
		endDate   string
		expected  int
	}{
		{name: "three day rental", startDate: "2026-07-01", endDate: "2026-07-04", expected: 3},
		{name: "same day is billed as one", startDate: "2026-07-01", endDate: "2026-07-01", expected: 1},
		{name: "single night", startDate: "2026-07-01", endDate: "2026-07-02", expected: 1},
		{name: "reversed dates use absolute difference", startDate: "2026-07-04", endDate: "2026-07-01", expected: 3},
		{name: "missing start date", startDate: "", endDate: "2026-07-04", expected: 0},
		{name: "missing end date", startDate: "2026-07-01", endDate: "", expected: 0},
		{name: "unparsable start date", startDate: "july 1st", endDate: "2026-07-04", expected: 0},
		{name: "two week rental", startDate: "2026-07-01", endDate: "2026-07-15", expected: 14},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sel := domain.NewBookingSelection()
			sel.StartDate = tc.startDate
			sel.EndDate = tc.endDate
			if got := pricing.Days(sel); got != tc.expected {
				t.Errorf("Days() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestProtectionPrice(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	testCases := []struct {
		level    domain.ProtectionLevel
		expected float64
	}{
		{level: domain.ProtectionNone, expected: 0},
		{level: domain.ProtectionBasic, expected: 4.55 * 3},
		{level: domain.ProtectionIntermediate, expected: 13.39 * 3},
		{level: domain.ProtectionComplete, expected: 37.08 * 3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.level), func(t *testing.T) {
			t.Parallel()
			sel := domain.NewBookingSelection()
			sel.StartDate = "2026-07-01"
			sel.EndDate = "2026-07-04"
			sel.ProtectionLevel = tc.level
			if got := pricing.ProtectionPrice(sel); !almostEqual(got, tc.expected) {
				t.Errorf("ProtectionPrice() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBasePriceWithoutVehicle(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()
	sel := domain.NewBookingSelection()
	sel.StartDate = "2026-07-01"
	sel.EndDate = "2026-07-04"
	sel.ProtectionLevel = domain.ProtectionBasic
	sel.MileageOption = domain.MileageUnlimited

	if got := pricing.BasePrice(sel); got != 0 {
		t.Errorf("BasePrice() without a vehicle = %v, expected 0", got)
	}

	// The total is just the non-vehicle components.
	b := pricing.Breakdown(sel)
	expected := b.Options + b.Protection + b.Mileage + b.PaymentOption +
		b.OutOfHours + b.DifferentLocation
	if !almostEqual(b.Total, expected) {
		t.Errorf("Total without a vehicle = %v, expected %v", b.Total, expected)
	}
}

func TestOptionsPrice(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	sel := domain.NewBookingSelection()
	sel.StartDate = "2026-07-01"
	sel.EndDate = "2026-07-04"
	sel.Options[domain.OptionAdditionalDriver] = true // 13/day
	sel.Options[domain.OptionFuelService] = true      // 13 once

	expected := 13.0*3 + 13.0
	if got := pricing.OptionsPrice(sel); !almostEqual(got, expected) {
		t.Errorf("OptionsPrice() = %v, expected %v", got, expected)
	}
}

func TestFullQuoteScenario(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	sel := domain.NewBookingSelection()
	sel.PickupLocationID = "loc-1"
	sel.ReturnLocationID = "loc-1"
	sel.StartDate = "2026-07-01"
	sel.EndDate = "2026-07-04"
	sel.StartTime = "07:00" // before opening, one flat fee
	sel.EndTime = "10:00"
	sel.SetVehicle(testVehicle())
	sel.ProtectionLevel = domain.ProtectionIntermediate
	sel.MileageOption = domain.MileageUnlimited
	sel.PaymentOption = domain.PaymentOptionFlexible
	sel.Options[domain.OptionBabySeat] = true // 16/day

	b := pricing.Breakdown(sel)

	if b.Days != 3 {
		t.Fatalf("Breakdown().Days = %d, expected 3", b.Days)
	}
	if !almostEqual(b.Base, 120) {
		t.Errorf("Base = %v, expected 120", b.Base)
	}
	if !almostEqual(b.Protection, 40.17) {
		t.Errorf("Protection = %v, expected 40.17", b.Protection)
	}
	if !almostEqual(b.Mileage, 10.44) {
		t.Errorf("Mileage = %v, expected 10.44", b.Mileage)
	}
	if !almostEqual(b.PaymentOption, 21) {
		t.Errorf("PaymentOption = %v, expected 21", b.PaymentOption)
	}
	if !almostEqual(b.Options, 48) {
		t.Errorf("Options = %v, expected 48", b.Options)
	}
	if !almostEqual(b.OutOfHours, 30) {
		t.Errorf("OutOfHours = %v, expected 30", b.OutOfHours)
	}
	if !almostEqual(b.DifferentLocation, 0) {
		t.Errorf("DifferentLocation = %v, expected 0", b.DifferentLocation)
	}
	if !almostEqual(b.Total, 269.61) {
		t.Errorf("Total = %v, expected 269.61", b.Total)
	}
}

func TestTotalMatchesBreakdown(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	sel := domain.NewBookingSelection()
	sel.StartDate = "2026-07-01"
	sel.EndDate = "2026-07-06"
	sel.SetVehicle(testVehicle())
	sel.ProtectionLevel = domain.ProtectionComplete
	sel.Options[domain.OptionGPSCarplay] = true

	first := pricing.Total(sel)
	second := pricing.Total(sel)
	b := pricing.Breakdown(sel)

	if !almostEqual(first, second) {
		t.Errorf("Total() not stable across calls: %v vs %v", first, second)
	}
	if !almostEqual(first, b.Total) {
		t.Errorf("Total() = %v, Breakdown().Total = %v", first, b.Total)
	}

	componentSum := b.Base + b.Options + b.Protection + b.Mileage +
		b.PaymentOption + b.OutOfHours + b.DifferentLocation
	if !almostEqual(b.Total, componentSum) {
		t.Errorf("Breakdown().Total = %v, component sum = %v", b.Total, componentSum)
	}
}

func TestQuoteWithoutDates(t *testing.T) {
	t.Parallel()

	pricing := service.NewPricingService()

	sel := domain.NewBookingSelection()
	sel.SetVehicle(testVehicle())
	sel.ProtectionLevel = domain.ProtectionComplete
	sel.MileageOption = domain.MileageUnlimited
	sel.Options[domain.OptionFuelService] = true // one-time fee applies at 0 days

	b := pricing.Breakdown(sel)
	if b.Days != 0 {
		t.Fatalf("Breakdown().Days = %d, expected 0 without dates", b.Days)
	}
	if !almostEqual(b.Base, 0) || !almostEqual(b.Protection, 0) || !almostEqual(b.Mileage, 0) {
		t.Errorf("per-day components should be 0 without dates, got base=%v protection=%v mileage=%v",
			b.Base, b.Protection, b.Mileage)
	}
	if !almostEqual(b.Options, 13) {
		t.Errorf("one-time option fee = %v, expected 13", b.Options)
	}
}
