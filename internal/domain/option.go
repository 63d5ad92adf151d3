package domain

// OptionID identifies one of the fixed additional options. The catalog has
// exactly nine entries; toggling never adds or removes entries.
type OptionID string

const (
	OptionAdditionalDriver      OptionID = "additional_driver"
	OptionFuelService           OptionID = "fuel_service"
	OptionGPSCarplay            OptionID = "gps_carplay"
	OptionBabySeat              OptionID = "baby_seat"
	OptionChildSeat             OptionID = "child_seat"
	OptionBoosterSeat           OptionID = "booster_seat"
	OptionTireGlass             OptionID = "tire_glass"
	OptionMobilityService       OptionID = "mobility_service"
	OptionInternationalCoverage OptionID = "international_coverage"
)

// AdditionalOption describes one entry of the fixed option catalog.
// PricePerDay applies when PerDay is true; otherwise PriceOnce is a flat
// one-time charge independent of the rental length.
type AdditionalOption struct {
	ID          OptionID `json:"id"`
	Name        string   `json:"name"`
	PricePerDay float64  `json:"price_per_day"`
	PriceOnce   float64  `json:"price_once"`
	PerDay      bool     `json:"is_per_day"`
}

// OptionCatalog is the fixed set of additional options, in display order.
var OptionCatalog = []AdditionalOption{
	{ID: OptionAdditionalDriver, Name: "Additional driver", PricePerDay: 13, PerDay: true},
	{ID: OptionFuelService, Name: "Fuel/recharge service", PriceOnce: 13},
	{ID: OptionGPSCarplay, Name: "GPS / Apple CarPlay / Android Auto", PricePerDay: 20.99, PerDay: true},
	{ID: OptionBabySeat, Name: "Baby seat", PricePerDay: 16, PerDay: true},
	{ID: OptionChildSeat, Name: "Child seat", PricePerDay: 16, PerDay: true},
	{ID: OptionBoosterSeat, Name: "Booster seat", PricePerDay: 10.99, PerDay: true},
	{ID: OptionTireGlass, Name: "Tire and glass protection", PricePerDay: 9.96, PerDay: true},
	{ID: OptionMobilityService, Name: "Mobility service", PricePerDay: 7.99, PerDay: true},
	{ID: OptionInternationalCoverage, Name: "International coverage", PriceOnce: 33.95},
}
