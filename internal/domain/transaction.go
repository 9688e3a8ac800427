package domain

import "time"

// Transaction is the immutable record of one completed paid stay. It is
// appended to the ledger on check-out and never mutated or deleted. SlotID is
// a historical reference, the slot may have been reused since.
type Transaction struct {
	ID            string          `json:"id"`
	PlateNumber   string          `json:"plate_number"`
	Category      VehicleCategory `json:"category"`
	SlotID        int64           `json:"slot_id"`
	CheckInTime   time.Time       `json:"check_in_time"`
	CheckOutTime  time.Time       `json:"check_out_time"`
	DurationHours float64         `json:"duration_hours"`
	Cost          float64         `json:"cost"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionFilter narrows ledger queries. Zero values mean "no constraint".
type TransactionFilter struct {
	Plate string
	From  *time.Time
	To    *time.Time
}

// RevenueReport is derived from ledger rows on demand and never stored.
type RevenueReport struct {
	Count             int                         `json:"count"`
	TotalRevenue      float64                     `json:"total_revenue"`
	RevenueByCategory map[VehicleCategory]float64 `json:"revenue_by_category"`
	AvgDurationHours  float64                     `json:"avg_duration_hours"`
}
