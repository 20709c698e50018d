package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatusMapping(t *testing.T) {
	cases := []struct {
		status string
		want   CanonicalStatus
	}{
		{"CONFIRMED", CanonicalConfirmed},
		{"confirmed", CanonicalConfirmed},
		{"Cancel - Payment Left", CanonicalCancelPendingRefund},
		{"CANCEL - PAYMENT LEFT", CanonicalCancelPendingRefund},
		{"CANCELLED", CanonicalCancelled},
		{"Cancelled", CanonicalCancelled},
		{"REFUNDED", CanonicalRefunded},
		{"partial-refund", CanonicalRefunded},
		{"", CanonicalUnknown},
		{"PENDING", CanonicalUnknown},
	}
	for _, tc := range cases {
		b := Booking{Status: tc.status}
		assert.Equal(t, tc.want, b.Canonical(), "status %q", tc.status)
	}
}

func TestIsRefundable(t *testing.T) {
	assert.True(t, Booking{Status: StatusCancelPaymentLeft}.IsRefundable())
	assert.False(t, Booking{Status: StatusConfirmed}.IsRefundable())
	assert.False(t, Booking{Status: StatusRefunded}.IsRefundable())
	assert.False(t, Booking{Status: "CANCELLED"}.IsRefundable())
}
