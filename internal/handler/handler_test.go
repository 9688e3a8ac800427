package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/stpnv0/ParkPoint/internal/handler/dto"
	hmocks "github.com/stpnv0/ParkPoint/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockParkingSvc, *hmocks.MockReservationSvc, *hmocks.MockLedgerSvc, *hmocks.MockPricingSvc, http.Handler) {
	t.Helper()
	parkingSvc := hmocks.NewMockParkingSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	ledgerSvc := hmocks.NewMockLedgerSvc(t)
	pricingSvc := hmocks.NewMockPricingSvc(t)

	h := NewHandler(parkingSvc, reservationSvc, ledgerSvc, pricingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/slots", h.ListSlots)
		api.POST("/slots/:id/check-in", h.CheckIn)
		api.GET("/slots/:id/quote", h.QuoteCheckOut)
		api.POST("/slots/:id/check-out", h.CheckOut)
		api.GET("/pricing", h.ListPricing)
		api.POST("/pricing/:category", h.SetRate)
		api.GET("/transactions", h.ListTransactions)
		api.GET("/transactions/report", h.RevenueReport)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.POST("/reservations/:id/status", h.SetReservationStatus)
		api.GET("/requesters/:id/reservations", h.ListRequesterReservations)
	}

	return parkingSvc, reservationSvc, ledgerSvc, pricingSvc, r
}

// --- Slots ---

func TestHandler_ListSlots(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	slots := []domain.Slot{
		{ID: 1},
		{ID: 2, Occupied: true, Vehicle: &domain.Vehicle{
			PlateNumber: "KA-01-1234",
			Category:    domain.CategoryCar,
			CheckInTime: time.Now().UTC(),
		}},
	}
	parkingSvc.EXPECT().ListSlots(mock.Anything).Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.False(t, resp[0].Occupied)
	assert.Nil(t, resp[0].Vehicle)
	assert.True(t, resp[1].Occupied)
	require.NotNil(t, resp[1].Vehicle)
	assert.Equal(t, "KA-01-1234", resp[1].Vehicle.PlateNumber)
}

func TestHandler_CheckIn_Success(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	slot := &domain.Slot{
		ID:       3,
		Occupied: true,
		Vehicle: &domain.Vehicle{
			PlateNumber: "KA-01-1234",
			Category:    domain.CategoryCar,
			CheckInTime: time.Now().UTC(),
		},
	}
	parkingSvc.EXPECT().
		CheckIn(mock.Anything, int64(3), "KA-01-1234", domain.CategoryCar).
		Return(slot, nil)

	body, _ := json.Marshal(dto.CheckInRequest{PlateNumber: "KA-01-1234", Category: "car"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/3/check-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.True(t, resp.Occupied)
}

func TestHandler_CheckIn_MissingPlate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"category":"car"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/3/check-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckIn_BadSlotID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CheckInRequest{PlateNumber: "KA-01-1234", Category: "car"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/abc/check-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckIn_Occupied(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	parkingSvc.EXPECT().
		CheckIn(mock.Anything, int64(3), "KA-01-1234", domain.CategoryCar).
		Return(nil, domain.ErrSlotOccupied)

	body, _ := json.Marshal(dto.CheckInRequest{PlateNumber: "KA-01-1234", Category: "car"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/3/check-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckIn_SlotNotFound(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	parkingSvc.EXPECT().
		CheckIn(mock.Anything, int64(99), "KA-01-1234", domain.CategoryCar).
		Return(nil, domain.ErrSlotNotFound)

	body, _ := json.Marshal(dto.CheckInRequest{PlateNumber: "KA-01-1234", Category: "car"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/99/check-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Quote_Success(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	checkIn := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	parkingSvc.EXPECT().Quote(mock.Anything, int64(7)).Return(&domain.CheckOutQuote{
		SlotID:        7,
		PlateNumber:   "KA-01-1234",
		Category:      domain.CategoryCar,
		CheckInTime:   checkIn,
		QuotedAt:      checkIn.Add(2*time.Hour + 30*time.Minute),
		DurationHours: 2.5,
		Cost:          125,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/7/quote", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 125.0, resp.Cost, 1e-9)
	assert.InDelta(t, 2.5, resp.DurationHours, 1e-9)
}

func TestHandler_Quote_SlotFree(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	parkingSvc.EXPECT().Quote(mock.Anything, int64(2)).Return(nil, domain.ErrSlotNotOccupied)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/2/quote", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckOut_Success(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	checkIn := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	parkingSvc.EXPECT().CheckOut(mock.Anything, int64(7)).Return(&domain.Transaction{
		ID:            uuid.New().String(),
		PlateNumber:   "KA-01-1234",
		Category:      domain.CategoryCar,
		SlotID:        7,
		CheckInTime:   checkIn,
		CheckOutTime:  checkIn.Add(90 * time.Minute),
		DurationHours: 1.5,
		Cost:          75,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/7/check-out", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.SlotID)
	assert.InDelta(t, 75.0, resp.Cost, 1e-9)
}

func TestHandler_CheckOut_NotOccupied(t *testing.T) {
	parkingSvc, _, _, _, r := setupRouter(t)

	parkingSvc.EXPECT().CheckOut(mock.Anything, int64(4)).Return(nil, domain.ErrSlotNotOccupied)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/4/check-out", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Pricing ---

func TestHandler_ListPricing(t *testing.T) {
	_, _, _, pricingSvc, r := setupRouter(t)

	pricingSvc.EXPECT().List(mock.Anything).Return([]domain.PricingRate{
		{Category: domain.CategoryMotorcycle, HourlyRate: 20},
		{Category: domain.CategoryCar, HourlyRate: 50},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pricing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "motorcycle", resp[0].Category)
}

func TestHandler_SetRate_Success(t *testing.T) {
	_, _, _, pricingSvc, r := setupRouter(t)

	pricingSvc.EXPECT().SetRate(mock.Anything, domain.CategoryCar, 60.0).Return(nil)

	body := []byte(`{"hourly_rate":60}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/car", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetRate_ZeroAllowed(t *testing.T) {
	_, _, _, pricingSvc, r := setupRouter(t)

	pricingSvc.EXPECT().SetRate(mock.Anything, domain.CategoryCar, 0.0).Return(nil)

	body := []byte(`{"hourly_rate":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/car", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetRate_MissingBody(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/car", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetRate_UnknownCategory(t *testing.T) {
	_, _, _, pricingSvc, r := setupRouter(t)

	pricingSvc.EXPECT().SetRate(mock.Anything, domain.VehicleCategory("bus"), 40.0).
		Return(domain.ErrValidation)

	body := []byte(`{"hourly_rate":40}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/bus", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Transactions ---

func TestHandler_ListTransactions_WithFilter(t *testing.T) {
	_, _, ledgerSvc, _, r := setupRouter(t)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	ledgerSvc.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Plate == "KA-01-1234" && f.From != nil && f.From.Equal(from) && f.To == nil
		})).
		Return([]*domain.Transaction{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/transactions?plate=KA-01-1234&from=2026-08-01T00:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListTransactions_BadFrom(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions?from=yesterday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RevenueReport(t *testing.T) {
	_, _, ledgerSvc, _, r := setupRouter(t)

	ledgerSvc.EXPECT().Report(mock.Anything, domain.TransactionFilter{}).Return(&domain.RevenueReport{
		Count:        2,
		TotalRevenue: 175,
		RevenueByCategory: map[domain.VehicleCategory]float64{
			domain.CategoryCar: 175,
		},
		AvgDurationHours: 1.75,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/report", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RevenueReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.InDelta(t, 175.0, resp.RevenueByCategory["car"], 1e-9)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	scheduledFor := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	reservation := &domain.Reservation{
		ID:           uuid.New().String(),
		RequesterID:  "u1",
		PlateNumber:  "KA-01-1234",
		Category:     domain.CategoryCar,
		SlotID:       3,
		ScheduledFor: scheduledFor,
		Status:       domain.ReservationStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		RequesterID:  "u1",
		PlateNumber:  "KA-01-1234",
		Category:     "car",
		SlotID:       3,
		ScheduledFor: scheduledFor.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(3), resp.SlotID)
}

func TestHandler_CreateReservation_BadDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"requester_id":"u1","plate_number":"KA-01-1234","category":"car","slot_id":3,"scheduled_for":"tomorrow"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetReservationStatus_Success(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().
		SetStatus(mock.Anything, id, domain.ReservationStatusConfirmed).
		Return(&domain.Reservation{ID: id, Status: domain.ReservationStatusConfirmed}, nil)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_SetReservationStatus_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/not-a-uuid/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetReservationStatus_IllegalTransition(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().
		SetStatus(mock.Anything, id, domain.ReservationStatusConfirmed).
		Return(nil, domain.ErrInvalidTransition)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SetReservationStatus_NotFound(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().
		SetStatus(mock.Anything, id, domain.ReservationStatusCancelled).
		Return(nil, domain.ErrReservationNotFound)

	body := []byte(`{"status":"cancelled"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListReservations_StatusFilter(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	pending := domain.ReservationStatusPending
	reservationSvc.EXPECT().
		ListAll(mock.Anything, &pending).
		Return([]*domain.Reservation{{ID: "r1", Status: pending}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?status=pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "pending", resp[0].Status)
}

func TestHandler_ListRequesterReservations(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().
		ListByRequester(mock.Anything, "u1").
		Return([]*domain.Reservation{
			{ID: "r1", RequesterID: "u1"},
			{ID: "r2", RequesterID: "u1"},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/requesters/u1/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
