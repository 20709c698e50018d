package booking

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "busadmin/database/repository/booking"
	"busadmin/models"
)

// BookingService exposes the admin booking listings.
type BookingService interface {
	// ListBookings returns bookings newest first, optionally narrowed by a
	// case-insensitive substring match on the status field. An empty filter
	// or the sentinel "ALL" returns everything.
	ListBookings(ctx context.Context, statusFilter string) ([]models.Booking, error)

	// ListPendingRefunds returns the actionable refund queue: bookings whose
	// status is exactly "Cancel - Payment Left", newest first.
	ListPendingRefunds(ctx context.Context) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

func (svc *DefaultBookingService) ListBookings(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	statusFilter = strings.TrimSpace(statusFilter)
	bookings, err := svc.Repo.List(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (svc *DefaultBookingService) ListPendingRefunds(ctx context.Context) ([]models.Booking, error) {
	bookings, err := svc.Repo.ListPendingRefunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending refunds: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
