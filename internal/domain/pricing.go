package domain

// PricingRate maps a vehicle category to its current hourly rate. Exactly one
// rate exists per category at all times; rates are updated in place and never
// deleted.
type PricingRate struct {
	Category   VehicleCategory `json:"category"`
	HourlyRate float64         `json:"hourly_rate"`
}
