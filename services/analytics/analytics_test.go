package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"busadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	args := m.Called(ctx, statusFilter)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListPendingRefunds(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkRefunded(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) TotalConfirmedRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBookingRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountCancelled(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) DailyConfirmedRevenue(ctx context.Context, since time.Time) ([]models.DailyRevenue, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyRevenue), args.Error(1)
}

func TestDashboardStats_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	series := []models.DailyRevenue{
		{Date: "2026-08-25", Revenue: 1200.5},
		{Date: "2026-08-27", Revenue: 640},
	}

	repo.On("TotalConfirmedRevenue", mock.Anything).Return(45230.5, nil)
	repo.On("CountCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(31), nil)
	repo.On("CountCancelled", mock.Anything).Return(int64(7), nil)
	repo.On("DailyConfirmedRevenue", mock.Anything, mock.AnythingOfType("time.Time")).Return(series, nil)

	svc := &DefaultAnalyticsService{Repo: repo}
	stats, err := svc.DashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 45230.5, stats.TotalRevenue)
	assert.Equal(t, int64(31), stats.WeeklyBookings)
	assert.Equal(t, int64(7), stats.CancelledCount)
	assert.Equal(t, series, stats.ChartData)

	// The trailing window handed to the repo is seven days, not anything else.
	since := repo.Calls[1].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, 5*time.Second)
}

func TestDashboardStats_EmptyChartIsNotNil(t *testing.T) {
	repo := &MockBookingRepository{}
	repo.On("TotalConfirmedRevenue", mock.Anything).Return(0.0, nil)
	repo.On("CountCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), nil)
	repo.On("CountCancelled", mock.Anything).Return(int64(0), nil)
	repo.On("DailyConfirmedRevenue", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	svc := &DefaultAnalyticsService{Repo: repo}
	stats, err := svc.DashboardStats(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, stats.ChartData)
	assert.Len(t, stats.ChartData, 0)
}

func TestDashboardStats_FailureYieldsNoPartialResult(t *testing.T) {
	repo := &MockBookingRepository{}
	repo.On("TotalConfirmedRevenue", mock.Anything).Return(45230.5, nil)
	repo.On("CountCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("server selection timeout"))

	svc := &DefaultAnalyticsService{Repo: repo}
	stats, err := svc.DashboardStats(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}
