package refund

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	bookingRepo "busadmin/database/repository/booking"

	"go.uber.org/zap"
)

// lockTTL bounds how long a booking stays claimed if a refund call hangs.
const lockTTL = 30 * time.Second

// RefundRequest is the operator's refund submission. Amount is in major
// currency units (rupees).
type RefundRequest struct {
	BookingID string  `json:"bookingId"`
	PaymentID string  `json:"paymentId"`
	Amount    float64 `json:"amount"`
}

// Locker provides per-booking mutual exclusion so two concurrent refund
// submissions for the same booking cannot both reach the gateway.
type Locker interface {
	AcquireRefundLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error)
	ReleaseRefundLock(ctx context.Context, bookingID string) error
}

// RefundService orchestrates gateway refunds for cancelled tickets.
type RefundService interface {
	// ProcessRefund calls the gateway first and mutates local state only
	// after gateway success. Returns the gateway's refund object.
	ProcessRefund(ctx context.Context, req RefundRequest) (map[string]interface{}, error)
}

// DefaultRefundService is the production implementation.
type DefaultRefundService struct {
	Repo    bookingRepo.BookingRepository
	Gateway Gateway
	Locks   Locker
	Logger  *zap.Logger
}

// MinorUnits converts a major-unit amount to the gateway's minor unit
// (paise), rounding half away from zero. Exactness here is monetary
// correctness: 250.5 must become 25050.
func MinorUnits(amount float64) int {
	return int(math.Round(amount * 100))
}

func (svc *DefaultRefundService) ProcessRefund(ctx context.Context, req RefundRequest) (map[string]interface{}, error) {
	if req.BookingID == "" || req.PaymentID == "" || req.Amount == 0 {
		return nil, ErrMissingFields
	}
	if svc.Gateway == nil {
		return nil, ErrGatewayNotConfigured
	}

	if svc.Locks != nil {
		acquired, err := svc.Locks.AcquireRefundLock(ctx, req.BookingID, lockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire refund lock: %w", err)
		}
		if !acquired {
			return nil, ErrRefundInProgress
		}
		defer func() {
			if err := svc.Locks.ReleaseRefundLock(ctx, req.BookingID); err != nil {
				svc.Logger.Warn("failed to release refund lock",
					zap.String("bookingId", req.BookingID), zap.Error(err))
			}
		}()
	}

	amountMinor := MinorUnits(req.Amount)
	svc.Logger.Info("initiating gateway refund",
		zap.String("paymentId", req.PaymentID),
		zap.Int("amountPaise", amountMinor))

	// Gateway first, local state second: a booking must never read REFUNDED
	// when no money moved. The inverse gap (gateway success, DB write fails)
	// surfaces as an error below with no compensating action.
	refundObj, err := svc.Gateway.Refund(ctx, req.PaymentID, amountMinor)
	if err != nil {
		svc.Logger.Warn("razorpay refused refund",
			zap.String("paymentId", req.PaymentID), zap.Error(err))
		return nil, &GatewayDeclinedError{Description: err.Error()}
	}

	if err := svc.Repo.MarkRefunded(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// The money already moved; reporting failure here would be
			// misleading. Log and report the successful refund.
			svc.Logger.Warn("refund succeeded but no booking matched the id",
				zap.String("bookingId", req.BookingID))
			return refundObj, nil
		}
		return nil, fmt.Errorf("refund succeeded but status update failed: %w", err)
	}

	svc.Logger.Info("booking marked refunded", zap.String("bookingId", req.BookingID))
	return refundObj, nil
}
