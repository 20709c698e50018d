package bookingRepo

import (
	"context"
	"time"

	"busadmin/models"
)

// BookingRepository defines persistence operations on the bookings collection.
type BookingRepository interface {
	// List returns bookings newest first. An empty statusFilter (or the
	// sentinel "ALL") returns everything; otherwise the filter is matched
	// case-insensitively as a substring of the status field.
	List(ctx context.Context, statusFilter string) ([]models.Booking, error)

	// ListPendingRefunds returns bookings whose status is exactly
	// "Cancel - Payment Left", newest first.
	ListPendingRefunds(ctx context.Context) ([]models.Booking, error)

	// MarkRefunded sets the booking status to REFUNDED by hex id. Returns
	// ErrBookingNotFound when no document matched.
	MarkRefunded(ctx context.Context, bookingID string) error

	// TotalConfirmedRevenue sums amount over bookings with status exactly
	// CONFIRMED.
	TotalConfirmedRevenue(ctx context.Context) (float64, error)

	// CountCreatedSince counts bookings created at or after the given time.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)

	// CountCancelled counts bookings whose status contains "cancel" or
	// "refund", case-insensitively.
	CountCancelled(ctx context.Context) (int64, error)

	// DailyConfirmedRevenue groups confirmed revenue per calendar day since
	// the given time, sorted ascending by date.
	DailyConfirmedRevenue(ctx context.Context, since time.Time) ([]models.DailyRevenue, error)
}
