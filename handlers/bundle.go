package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler  gin.HandlerFunc
	LogoutHandler gin.HandlerFunc

	// Dashboard endpoints
	GetAnalyticsHandler gin.HandlerFunc
	ListBookingsHandler gin.HandlerFunc

	// Refund endpoints
	ListPendingRefundsHandler gin.HandlerFunc
	ProcessRefundHandler      gin.HandlerFunc
}
