package domain

import "time"

type VehicleCategory string

const (
	CategoryMotorcycle VehicleCategory = "motorcycle"
	CategoryCar        VehicleCategory = "car"
	CategorySUV        VehicleCategory = "suv"
	CategoryTruck      VehicleCategory = "truck"
)

var Categories = []VehicleCategory{
	CategoryMotorcycle,
	CategoryCar,
	CategorySUV,
	CategoryTruck,
}

func (c VehicleCategory) Valid() bool {
	switch c {
	case CategoryMotorcycle, CategoryCar, CategorySUV, CategoryTruck:
		return true
	}
	return false
}

// Vehicle is owned by the slot it occupies; its data is copied into a
// Transaction on check-out and the value is discarded.
type Vehicle struct {
	PlateNumber string          `json:"plate_number"`
	Category    VehicleCategory `json:"category"`
	CheckInTime time.Time       `json:"check_in_time"`
}

// Slot invariant: Vehicle != nil exactly when Occupied is true.
type Slot struct {
	ID       int64    `json:"id"`
	Occupied bool     `json:"occupied"`
	Vehicle  *Vehicle `json:"vehicle,omitempty"`
}
