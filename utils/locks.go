package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RefundLockPrefix is the prefix used for Redis refund lock keys.
const RefundLockPrefix = "refundLock:"

// RefundLocker claims a booking for the duration of a refund call so two
// concurrent submissions cannot both reach the gateway.
type RefundLocker struct {
	client *redis.Client
}

// NewRefundLocker wraps a Redis client as a refund locker.
func NewRefundLocker(client *redis.Client) *RefundLocker {
	return &RefundLocker{client: client}
}

// AcquireRefundLock claims the booking. Returns false when another refund
// already holds the claim.
func (l *RefundLocker) AcquireRefundLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, RefundLockPrefix+bookingID, "1", ttl).Result()
}

// ReleaseRefundLock drops the claim.
func (l *RefundLocker) ReleaseRefundLock(ctx context.Context, bookingID string) error {
	return l.client.Del(ctx, RefundLockPrefix+bookingID).Err()
}
