package domain

// PaymentOption determines the rate plan for the rental.
type PaymentOption string

const (
	PaymentOptionBestPrice PaymentOption = "best_price"
	PaymentOptionFlexible  PaymentOption = "flexible"
)

// IsValid returns true if the payment option is recognized.
func (o PaymentOption) IsValid() bool {
	return o == PaymentOptionBestPrice || o == PaymentOptionFlexible
}

// MileageOption determines whether driven distance is capped or unlimited.
type MileageOption string

const (
	MileageIncluded  MileageOption = "included"
	MileageUnlimited MileageOption = "unlimited"
)

// IsValid returns true if the mileage option is recognized.
func (o MileageOption) IsValid() bool {
	return o == MileageIncluded || o == MileageUnlimited
}

// ProtectionLevel is the tier of damage/theft coverage added to a rental.
type ProtectionLevel string

const (
	ProtectionNone         ProtectionLevel = "none"
	ProtectionBasic        ProtectionLevel = "basic"
	ProtectionIntermediate ProtectionLevel = "intermediate"
	ProtectionComplete     ProtectionLevel = "complete"
)

// IsValid returns true if the protection level is recognized.
func (l ProtectionLevel) IsValid() bool {
	switch l {
	case ProtectionNone, ProtectionBasic, ProtectionIntermediate, ProtectionComplete:
		return true
	}
	return false
}

// PaymentMethod is how the customer intends to pay at the counter.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPaypal   PaymentMethod = "paypal"
	PaymentMethodApplePay PaymentMethod = "apple_pay"
)

// IsValid returns true if the payment method is recognized.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPaypal, PaymentMethodApplePay:
		return true
	}
	return false
}

// DriverInfo holds the primary driver's contact details and eligibility.
type DriverInfo struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CountryCode      string `json:"country_code"`
	IsOver25         bool   `json:"is_over_25"`
	HasLicense2Years bool   `json:"has_license_2_years"`
}

// IsComplete returns true when every field required to submit a
// reservation is filled in and both eligibility boxes are ticked.
func (d DriverInfo) IsComplete() bool {
	return d.FirstName != "" &&
		d.LastName != "" &&
		d.Email != "" &&
		d.Phone != "" &&
		d.IsOver25 &&
		d.HasLicense2Years
}

// SearchParams is a partial update of the search fields; nil fields are
// left untouched. Used to hydrate the selection from an external booking
// widget submission.
type SearchParams struct {
	PickupLocationID *string
	ReturnLocationID *string
	StartDate        *string
	EndDate          *string
	StartTime        *string
	EndTime          *string
}

// DriverInfoUpdate is a partial update of the driver record; nil fields
// are left untouched.
type DriverInfoUpdate struct {
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	CountryCode      *string
	IsOver25         *bool
	HasLicense2Years *bool
}

const (
	defaultWallTime    = "09:00"
	defaultCountryCode = "+33"
)

// BookingSelection is the mutable state of an in-progress booking. It is
// an explicit state object owned by the wizard flow; every mutation is
// followed by an explicit save through the session store.
type BookingSelection struct {
	PickupLocationID string `json:"pickup_location_id"`
	ReturnLocationID string `json:"return_location_id"`
	StartDate        string `json:"start_date"` // "2006-01-02", empty when unset
	EndDate          string `json:"end_date"`
	StartTime        string `json:"start_time"` // "HH:MM" wall clock
	EndTime          string `json:"end_time"`

	// Value snapshot taken at selection time, not a live catalog reference.
	Vehicle *Vehicle `json:"vehicle"`

	PaymentOption   PaymentOption   `json:"payment_option"`
	MileageOption   MileageOption   `json:"mileage_option"`
	ProtectionLevel ProtectionLevel `json:"protection_level"`

	// Enabled flags for the fixed 9-entry option catalog, keyed by option id.
	Options map[OptionID]bool `json:"options"`

	Driver        DriverInfo    `json:"driver"`
	PaymentMethod PaymentMethod `json:"payment_method"`

	CurrentStep Step `json:"current_step"`
}

// NewBookingSelection returns a selection with the documented defaults.
func NewBookingSelection() *BookingSelection {
	options := make(map[OptionID]bool, len(OptionCatalog))
	for _, spec := range OptionCatalog {
		options[spec.ID] = false
	}
	return &BookingSelection{
		StartTime:       defaultWallTime,
		EndTime:         defaultWallTime,
		PaymentOption:   PaymentOptionBestPrice,
		MileageOption:   MileageIncluded,
		ProtectionLevel: ProtectionNone,
		Options:         options,
		Driver:          DriverInfo{CountryCode: defaultCountryCode},
		PaymentMethod:   PaymentMethodCard,
		CurrentStep:     StepVehicle,
	}
}

// ApplySearchParams merges the non-nil fields into the selection.
func (b *BookingSelection) ApplySearchParams(p SearchParams) {
	if p.PickupLocationID != nil {
		b.PickupLocationID = *p.PickupLocationID
	}
	if p.ReturnLocationID != nil {
		b.ReturnLocationID = *p.ReturnLocationID
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.StartTime != nil {
		b.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		b.EndTime = *p.EndTime
	}
}

// SetVehicle stores a value snapshot of the given catalog entry, or clears
// the selection when nil.
func (b *BookingSelection) SetVehicle(v *Vehicle) {
	if v == nil {
		b.Vehicle = nil
		return
	}
	snapshot := *v
	b.Vehicle = &snapshot
}

// ToggleOption flips the enabled flag for the given option id. It returns
// false, leaving the selection untouched, when the id is not part of the
// fixed catalog.
func (b *BookingSelection) ToggleOption(id OptionID) bool {
	enabled, ok := b.Options[id]
	if !ok {
		return false
	}
	b.Options[id] = !enabled
	return true
}

// MergeDriverInfo shallow-merges the non-nil fields into the driver record.
func (b *BookingSelection) MergeDriverInfo(u DriverInfoUpdate) {
	if u.FirstName != nil {
		b.Driver.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		b.Driver.LastName = *u.LastName
	}
	if u.Email != nil {
		b.Driver.Email = *u.Email
	}
	if u.Phone != nil {
		b.Driver.Phone = *u.Phone
	}
	if u.CountryCode != nil {
		b.Driver.CountryCode = *u.CountryCode
	}
	if u.IsOver25 != nil {
		b.Driver.IsOver25 = *u.IsOver25
	}
	if u.HasLicense2Years != nil {
		b.Driver.HasLicense2Years = *u.HasLicense2Years
	}
}

// Reset restores every field to its documented default, including the full
// option catalog with all flags disabled.
func (b *BookingSelection) Reset() {
	*b = *NewBookingSelection()
}

// HasActiveBooking reports whether the selection holds enough to resume a
// rental (both dates and a vehicle).
func (b *BookingSelection) HasActiveBooking() bool {
	return b.StartDate != "" && b.EndDate != "" && b.Vehicle != nil
}

// EnabledOptions returns the catalog entries currently enabled, in catalog
// order.
func (b *BookingSelection) EnabledOptions() []AdditionalOption {
	var enabled []AdditionalOption
	for _, spec := range OptionCatalog {
		if b.Options[spec.ID] {
			enabled = append(enabled, spec)
		}
	}
	return enabled
}
