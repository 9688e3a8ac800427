package dto

import (
	"time"

	"github.com/stpnv0/ParkPoint/internal/domain"
)

type VehicleResponse struct {
	PlateNumber string `json:"plate_number"`
	Category    string `json:"category"`
	CheckInTime string `json:"check_in_time"`
}

type SlotResponse struct {
	ID       int64            `json:"id"`
	Occupied bool             `json:"occupied"`
	Vehicle  *VehicleResponse `json:"vehicle,omitempty"`
}

type QuoteResponse struct {
	SlotID        int64   `json:"slot_id"`
	PlateNumber   string  `json:"plate_number"`
	Category      string  `json:"category"`
	CheckInTime   string  `json:"check_in_time"`
	QuotedAt      string  `json:"quoted_at"`
	DurationHours float64 `json:"duration_hours"`
	Cost          float64 `json:"cost"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	PlateNumber   string  `json:"plate_number"`
	Category      string  `json:"category"`
	SlotID        int64   `json:"slot_id"`
	CheckInTime   string  `json:"check_in_time"`
	CheckOutTime  string  `json:"check_out_time"`
	DurationHours float64 `json:"duration_hours"`
	Cost          float64 `json:"cost"`
}

type RateResponse struct {
	Category   string  `json:"category"`
	HourlyRate float64 `json:"hourly_rate"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	RequesterID  string `json:"requester_id"`
	PlateNumber  string `json:"plate_number"`
	Category     string `json:"category"`
	SlotID       int64  `json:"slot_id"`
	ScheduledFor string `json:"scheduled_for"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type RevenueReportResponse struct {
	Count             int                `json:"count"`
	TotalRevenue      float64            `json:"total_revenue"`
	RevenueByCategory map[string]float64 `json:"revenue_by_category"`
	AvgDurationHours  float64            `json:"avg_duration_hours"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	resp := SlotResponse{ID: s.ID, Occupied: s.Occupied}
	if s.Vehicle != nil {
		resp.Vehicle = &VehicleResponse{
			PlateNumber: s.Vehicle.PlateNumber,
			Category:    string(s.Vehicle.Category),
			CheckInTime: s.Vehicle.CheckInTime.Format(time.RFC3339),
		}
	}
	return resp
}

func ToQuoteResponse(q *domain.CheckOutQuote) QuoteResponse {
	return QuoteResponse{
		SlotID:        q.SlotID,
		PlateNumber:   q.PlateNumber,
		Category:      string(q.Category),
		CheckInTime:   q.CheckInTime.Format(time.RFC3339),
		QuotedAt:      q.QuotedAt.Format(time.RFC3339),
		DurationHours: q.DurationHours,
		Cost:          q.Cost,
	}
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		PlateNumber:   t.PlateNumber,
		Category:      string(t.Category),
		SlotID:        t.SlotID,
		CheckInTime:   t.CheckInTime.Format(time.RFC3339),
		CheckOutTime:  t.CheckOutTime.Format(time.RFC3339),
		DurationHours: t.DurationHours,
		Cost:          t.Cost,
	}
}

func ToRateResponse(r domain.PricingRate) RateResponse {
	return RateResponse{
		Category:   string(r.Category),
		HourlyRate: r.HourlyRate,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		RequesterID:  r.RequesterID,
		PlateNumber:  r.PlateNumber,
		Category:     string(r.Category),
		SlotID:       r.SlotID,
		ScheduledFor: r.ScheduledFor.Format(time.RFC3339),
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRevenueReportResponse(r *domain.RevenueReport) RevenueReportResponse {
	byCategory := make(map[string]float64, len(r.RevenueByCategory))
	for c, v := range r.RevenueByCategory {
		byCategory[string(c)] = v
	}
	return RevenueReportResponse{
		Count:             r.Count,
		TotalRevenue:      r.TotalRevenue,
		RevenueByCategory: byCategory,
		AvgDurationHours:  r.AvgDurationHours,
	}
}
