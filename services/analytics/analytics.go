package analytics

import (
	"context"
	"fmt"
	"time"

	"busadmin/models"
)

const trailingWindow = 7 * 24 * time.Hour

// DashboardStats aggregates the revenue and booking figures shown on the
// dashboard. Revenue counts only bookings whose status is exactly CONFIRMED;
// the cancelled figure uses the fuzzy status match since the field is free
// text. Any query failure fails the whole call, no partial results.
func (svc *DefaultAnalyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	sevenDaysAgo := time.Now().Add(-trailingWindow)

	totalRevenue, err := svc.Repo.TotalConfirmedRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total revenue: %w", err)
	}

	weeklyBookings, err := svc.Repo.CountCreatedSince(ctx, sevenDaysAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to count weekly bookings: %w", err)
	}

	cancelledCount, err := svc.Repo.CountCancelled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cancelled bookings: %w", err)
	}

	chartData, err := svc.Repo.DailyConfirmedRevenue(ctx, sevenDaysAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to build revenue chart: %w", err)
	}
	if chartData == nil {
		chartData = []models.DailyRevenue{}
	}

	return &models.DashboardStats{
		TotalRevenue:   totalRevenue,
		WeeklyBookings: weeklyBookings,
		CancelledCount: cancelledCount,
		ChartData:      chartData,
	}, nil
}
