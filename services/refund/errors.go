package refund

import (
	"errors"
	"fmt"
)

// ErrMissingFields signals an incomplete refund request.
var ErrMissingFields = errors.New("missing required fields (bookingId, paymentId, or amount)")

// ErrGatewayNotConfigured signals absent Razorpay credentials on the server.
var ErrGatewayNotConfigured = errors.New("razorpay keys missing on server")

// ErrRefundInProgress signals a concurrent refund attempt for the same booking.
var ErrRefundInProgress = errors.New("a refund for this booking is already in progress")

// GatewayDeclinedError carries the gateway's own failure description so the
// operator sees why Razorpay refused the refund.
type GatewayDeclinedError struct {
	Description string
}

func (e *GatewayDeclinedError) Error() string {
	return fmt.Sprintf("razorpay declined refund: %s", e.Description)
}
