package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/stpnv0/ParkPoint/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ParkingSvc interface {
	ListSlots(ctx context.Context) ([]domain.Slot, error)
	CheckIn(ctx context.Context, slotID int64, plate string, category domain.VehicleCategory) (*domain.Slot, error)
	Quote(ctx context.Context, slotID int64) (*domain.CheckOutQuote, error)
	CheckOut(ctx context.Context, slotID int64) (*domain.Transaction, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	SetStatus(ctx context.Context, id string, next domain.ReservationStatus) (*domain.Reservation, error)
	ListAll(ctx context.Context, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error)
}

type LedgerSvc interface {
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	Report(ctx context.Context, filter domain.TransactionFilter) (*domain.RevenueReport, error)
}

type PricingSvc interface {
	List(ctx context.Context) ([]domain.PricingRate, error)
	SetRate(ctx context.Context, category domain.VehicleCategory, hourlyRate float64) error
}

type Handler struct {
	parkingService     ParkingSvc
	reservationService ReservationSvc
	ledgerService      LedgerSvc
	pricingService     PricingSvc
}

func NewHandler(
	parkingService ParkingSvc,
	reservationService ReservationSvc,
	ledgerService LedgerSvc,
	pricingService PricingSvc,
) *Handler {
	return &Handler{
		parkingService:     parkingService,
		reservationService: reservationService,
		ledgerService:      ledgerService,
		pricingService:     pricingService,
	}
}

// Slots

func (h *Handler) ListSlots(c *ginext.Context) {
	slots, err := h.parkingService.ListSlots(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		resp = append(resp, dto.ToSlotResponse(&slots[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CheckIn(c *ginext.Context) {
	slotID, ok := slotIDParam(c)
	if !ok {
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.parkingService.CheckIn(
		c.Request.Context(), slotID, req.PlateNumber, domain.VehicleCategory(req.Category),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) QuoteCheckOut(c *ginext.Context) {
	slotID, ok := slotIDParam(c)
	if !ok {
		return
	}

	quote, err := h.parkingService.Quote(c.Request.Context(), slotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func (h *Handler) CheckOut(c *ginext.Context) {
	slotID, ok := slotIDParam(c)
	if !ok {
		return
	}

	txn, err := h.parkingService.CheckOut(c.Request.Context(), slotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Pricing

func (h *Handler) ListPricing(c *ginext.Context) {
	rates, err := h.pricingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		resp = append(resp, dto.ToRateResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetRate(c *ginext.Context) {
	category := c.Param("category")

	var req dto.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.pricingService.SetRate(
		c.Request.Context(), domain.VehicleCategory(category), *req.HourlyRate,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

// Transactions

func (h *Handler) ListTransactions(c *ginext.Context) {
	filter, ok := transactionFilter(c)
	if !ok {
		return
	}

	txns, err := h.ledgerService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		resp = append(resp, dto.ToTransactionResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RevenueReport(c *ginext.Context) {
	filter, ok := transactionFilter(c)
	if !ok {
		return
	}

	report, err := h.ledgerService.Report(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueReportResponse(report))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scheduledFor, err := time.Parse(time.RFC3339, req.ScheduledFor)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid scheduled_for format, expected RFC3339",
		})
		return
	}

	input := domain.CreateReservationInput{
		RequesterID:  req.RequesterID,
		PlateNumber:  req.PlateNumber,
		Category:     domain.VehicleCategory(req.Category),
		SlotID:       req.SlotID,
		ScheduledFor: scheduledFor,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) SetReservationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.SetReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.SetStatus(
		c.Request.Context(), id, domain.ReservationStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	var status *domain.ReservationStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ReservationStatus(raw)
		status = &s
	}

	reservations, err := h.reservationService.ListAll(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *Handler) ListRequesterReservations(c *ginext.Context) {
	requesterID := c.Param("id")

	reservations, err := h.reservationService.ListByRequester(c.Request.Context(), requesterID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func toReservationResponses(reservations []*domain.Reservation) []dto.ReservationResponse {
	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return resp
}

func slotIDParam(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return 0, false
	}
	return id, true
}

func transactionFilter(c *ginext.Context) (domain.TransactionFilter, bool) {
	filter := domain.TransactionFilter{Plate: c.Query("plate")}

	for _, q := range []struct {
		name string
		dest **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid " + q.name + " format, expected RFC3339",
			})
			return domain.TransactionFilter{}, false
		}
		*q.dest = &t
	}

	return filter, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrRateNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotOccupied),
		errors.Is(err, domain.ErrSlotNotOccupied),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrDuplicateTransaction):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
