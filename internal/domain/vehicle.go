package domain

// Vehicle represents a rentable vehicle from the fleet catalog.
type Vehicle struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	PricePerDay  float64 `json:"price_per_day"`
	ImageURL     string  `json:"image_url,omitempty"`
	Seats        int     `json:"seats"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Available    bool    `json:"available"`
}

// PickupLocation represents an agency where vehicles are picked up or returned.
type PickupLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
