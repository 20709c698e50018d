package handlers

import (
	"errors"
	"net/http"

	"busadmin/services/booking"
	"busadmin/services/refund"
	"busadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RefundHandler serves the refund queue and processes gateway refunds.
type RefundHandler struct {
	Bookings booking.BookingService
	Refunds  refund.RefundService
}

// NewRefundHandler creates a new RefundHandler.
func NewRefundHandler(bookings booking.BookingService, refunds refund.RefundService) *RefundHandler {
	return &RefundHandler{Bookings: bookings, Refunds: refunds}
}

// ListPendingRefundsHandler returns the actionable refund queue, newest first.
func (rh *RefundHandler) ListPendingRefundsHandler(c *gin.Context) {
	bookings, err := rh.Bookings.ListPendingRefunds(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list pending refunds", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}

// ProcessRefundHandler validates the request, calls the gateway and updates
// the booking. Error statuses follow the refund service taxonomy: missing
// fields 400, missing credentials 500, gateway decline 400 with the
// gateway's description, concurrent attempt 409.
func (rh *RefundHandler) ProcessRefundHandler(c *gin.Context) {
	var req refund.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	refundObj, err := rh.Refunds.ProcessRefund(c.Request.Context(), req)
	if err != nil {
		var declined *refund.GatewayDeclinedError
		switch {
		case errors.Is(err, refund.ErrMissingFields):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, refund.ErrGatewayNotConfigured):
			utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		case errors.Is(err, refund.ErrRefundInProgress):
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
		case errors.As(err, &declined):
			utils.JSONError(c, http.StatusBadRequest, "Razorpay declined refund", declined.Description)
		default:
			zap.L().Error("Refund processing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": refundObj})
}
