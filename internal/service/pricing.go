package service

import (
	"math"
	"time"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/domain"
)

const dateLayout = "2006-01-02"

// Per-day rates in currency units.
const (
	unlimitedMileageRatePerDay = 3.48
	flexiblePaymentRatePerDay  = 7.0
)

// protectionRatePerDay returns the per-day rate for a protection level.
// The switch is exhaustive over the closed enum; an unrecognized level
// prices as no protection.
func protectionRatePerDay(level domain.ProtectionLevel) float64 {
	switch level {
	case domain.ProtectionNone:
		return 0
	case domain.ProtectionBasic:
		return 4.55
	case domain.ProtectionIntermediate:
		return 13.39
	case domain.ProtectionComplete:
		return 37.08
	default:
		return 0
	}
}

// PriceBreakdown is the full decomposition of a booking quote. Every
// per-day component is derived from the same Days value.
type PriceBreakdown struct {
	Days              int     `json:"days"`
	Base              float64 `json:"base"`
	Options           float64 `json:"options"`
	Protection        float64 `json:"protection"`
	Mileage           float64 `json:"mileage"`
	PaymentOption     float64 `json:"payment_option"`
	OutOfHours        float64 `json:"out_of_hours_surcharge"`
	DifferentLocation float64 `json:"different_location_surcharge"`
	Total             float64 `json:"total"`
}

// PricingService derives prices from the current booking selection. All
// methods are pure projections: nothing is cached, repeated calls over an
// unchanged selection return the same values.
type PricingService struct {
	hours OperatingHours
}

// NewPricingService creates a PricingService with default operating hours.
func NewPricingService() *PricingService {
	return &PricingService{hours: DefaultOperatingHours()}
}

// Days returns the billed rental length in days: at least 1 when both
// dates are present, 0 as a sentinel when either date is missing or does
// not parse. Reversed ranges bill on the absolute difference.
func (p *PricingService) Days(sel *domain.BookingSelection) int {
	if sel.StartDate == "" || sel.EndDate == "" {
		return 0
	}
	start, err := time.Parse(dateLayout, sel.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, sel.EndDate)
	if err != nil {
		return 0
	}
	diff := math.Abs(end.Sub(start).Hours() / 24)
	days := int(math.Ceil(diff))
	if days < 1 {
		return 1
	}
	return days
}

// BasePrice returns the vehicle's per-day rate times the rental length, or
// 0 when no vehicle is selected.
func (p *PricingService) BasePrice(sel *domain.BookingSelection) float64 {
	return basePrice(sel, p.Days(sel))
}

// OptionsPrice sums the enabled additional options: per-day entries scale
// with the rental length, one-time entries charge their flat fee.
func (p *PricingService) OptionsPrice(sel *domain.BookingSelection) float64 {
	return optionsPrice(sel, p.Days(sel))
}

// ProtectionPrice returns the protection tier's per-day rate times the
// rental length.
func (p *PricingService) ProtectionPrice(sel *domain.BookingSelection) float64 {
	return protectionPrice(sel, p.Days(sel))
}

// MileagePrice returns the unlimited-mileage per-day rate times the rental
// length, or 0 for included mileage.
func (p *PricingService) MileagePrice(sel *domain.BookingSelection) float64 {
	return mileagePrice(sel, p.Days(sel))
}

// PaymentOptionPrice returns the flexible-rate per-day premium times the
// rental length, or 0 for the best-price plan.
func (p *PricingService) PaymentOptionPrice(sel *domain.BookingSelection) float64 {
	return paymentOptionPrice(sel, p.Days(sel))
}

// OutOfHoursSurcharge returns the flat pickup/return out-of-hours fees for
// the selected times.
func (p *PricingService) OutOfHoursSurcharge(sel *domain.BookingSelection) float64 {
	return p.hours.OutOfHoursSurcharge(sel.StartTime, sel.EndTime)
}

// DifferentLocationSurcharge returns the flat fee when the return agency
// differs from the pickup agency.
func (p *PricingService) DifferentLocationSurcharge(sel *domain.BookingSelection) float64 {
	return DifferentLocationSurcharge(sel.PickupLocationID, sel.ReturnLocationID)
}

// Total returns the sum of all price components. No rounding is applied;
// presentation rounding is the caller's concern.
func (p *PricingService) Total(sel *domain.BookingSelection) float64 {
	return p.Breakdown(sel).Total
}

// Breakdown computes the full quote. The day count is computed exactly
// once and shared by every per-day component.
func (p *PricingService) Breakdown(sel *domain.BookingSelection) PriceBreakdown {
	days := p.Days(sel)
	b := PriceBreakdown{
		Days:              days,
		Base:              basePrice(sel, days),
		Options:           optionsPrice(sel, days),
		Protection:        protectionPrice(sel, days),
		Mileage:           mileagePrice(sel, days),
		PaymentOption:     paymentOptionPrice(sel, days),
		OutOfHours:        p.hours.OutOfHoursSurcharge(sel.StartTime, sel.EndTime),
		DifferentLocation: DifferentLocationSurcharge(sel.PickupLocationID, sel.ReturnLocationID),
	}
	b.Total = b.Base + b.Options + b.Protection + b.Mileage + b.PaymentOption + b.OutOfHours + b.DifferentLocation
	return b
}

func basePrice(sel *domain.BookingSelection, days int) float64 {
	if sel.Vehicle == nil {
		return 0
	}
	return sel.Vehicle.PricePerDay * float64(days)
}

func optionsPrice(sel *domain.BookingSelection, days int) float64 {
	var total float64
	for _, spec := range domain.OptionCatalog {
		if !sel.Options[spec.ID] {
			continue
		}
		if spec.PerDay {
			total += spec.PricePerDay * float64(days)
		} else {
			total += spec.PriceOnce
		}
	}
	return total
}

func protectionPrice(sel *domain.BookingSelection, days int) float64 {
	return protectionRatePerDay(sel.ProtectionLevel) * float64(days)
}

func mileagePrice(sel *domain.BookingSelection, days int) float64 {
	if sel.MileageOption == domain.MileageUnlimited {
		return unlimitedMileageRatePerDay * float64(days)
	}
	return 0
}

func paymentOptionPrice(sel *domain.BookingSelection, days int) float64 {
	if sel.PaymentOption == domain.PaymentOptionFlexible {
		return flexiblePaymentRatePerDay * float64(days)
	}
	return 0
}
