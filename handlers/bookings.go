package handlers

import (
	"net/http"

	"busadmin/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the admin booking listings.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler returns bookings newest first. The optional "status"
// query narrows the list by case-insensitive substring match; "ALL" or an
// absent value returns everything.
func (bh *BookingHandler) ListBookingsHandler(c *gin.Context) {
	statusFilter := c.Query("status")

	bookings, err := bh.Service.ListBookings(c.Request.Context(), statusFilter)
	if err != nil {
		zap.L().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}
