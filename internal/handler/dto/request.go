package dto

type CheckInRequest struct {
	PlateNumber string `json:"plate_number" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

type SetRateRequest struct {
	HourlyRate *float64 `json:"hourly_rate" binding:"required"`
}

type CreateReservationRequest struct {
	RequesterID  string `json:"requester_id" binding:"required"`
	PlateNumber  string `json:"plate_number" binding:"required"`
	Category     string `json:"category" binding:"required"`
	SlotID       int64  `json:"slot_id" binding:"required"`
	ScheduledFor string `json:"scheduled_for" binding:"required"`
}

type SetReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
