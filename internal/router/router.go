package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSlots(c *ginext.Context)
	CheckIn(c *ginext.Context)
	QuoteCheckOut(c *ginext.Context)
	CheckOut(c *ginext.Context)
	ListPricing(c *ginext.Context)
	SetRate(c *ginext.Context)
	ListTransactions(c *ginext.Context)
	RevenueReport(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	SetReservationStatus(c *ginext.Context)
	ListReservations(c *ginext.Context)
	ListRequesterReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Slots
		api.GET("/slots", h.ListSlots)
		api.POST("/slots/:id/check-in", h.CheckIn)
		api.GET("/slots/:id/quote", h.QuoteCheckOut)
		api.POST("/slots/:id/check-out", h.CheckOut)

		// Pricing
		api.GET("/pricing", h.ListPricing)
		api.POST("/pricing/:category", h.SetRate)

		// Transactions
		api.GET("/transactions", h.ListTransactions)
		api.GET("/transactions/report", h.RevenueReport)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.POST("/reservations/:id/status", h.SetReservationStatus)
		api.GET("/requesters/:id/reservations", h.ListRequesterReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
