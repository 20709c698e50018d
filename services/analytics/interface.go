package analytics

import (
	"context"

	bookingRepo "busadmin/database/repository/booking"
	"busadmin/models"
)

// AnalyticsService computes the dashboard statistics.
type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultAnalyticsService is the production implementation.
type DefaultAnalyticsService struct {
	Repo bookingRepo.BookingRepository
}
