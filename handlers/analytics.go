package handlers

import (
	"net/http"

	"busadmin/services/analytics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler serves the dashboard statistics.
type AnalyticsHandler struct {
	Service analytics.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc}
}

// GetAnalyticsHandler returns total revenue, weekly bookings, cancellations
// and the 7-day revenue chart. Any aggregation failure yields a generic 500;
// partial results are never returned.
func (ah *AnalyticsHandler) GetAnalyticsHandler(c *gin.Context) {
	stats, err := ah.Service.DashboardStats(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
