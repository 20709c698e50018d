package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Raw status values as written by the booking flow. The field is free text
// in the collection, so these are the values we write, not the only values
// we read.
const (
	StatusConfirmed         = "CONFIRMED"
	StatusCancelPaymentLeft = "Cancel - Payment Left"
	StatusRefunded          = "REFUNDED"
)

// CanonicalStatus is the closed set of booking states derived from the
// free-text status field.
type CanonicalStatus string

const (
	CanonicalConfirmed           CanonicalStatus = "confirmed"
	CanonicalCancelPendingRefund CanonicalStatus = "cancel_pending_refund"
	CanonicalCancelled           CanonicalStatus = "cancelled"
	CanonicalRefunded            CanonicalStatus = "refunded"
	CanonicalUnknown             CanonicalStatus = "unknown"
)

// Booking is a bus-ticket booking record. Created by the public booking
// flow with status CONFIRMED; the admin refund flow moves it to REFUNDED.
type Booking struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingRefNo      string             `bson:"bookingRefNo" json:"bookingRefNo"`
	TransportPNR      string             `bson:"transportPNR" json:"transportPNR"`
	RazorpayPaymentID string             `bson:"razorpayPaymentId" json:"razorpayPaymentId"`
	Amount            float64            `bson:"amount" json:"amount"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Canonical maps the free-text status onto the closed state set. Matching
// mirrors the substring semantics used by the collection queries: anything
// containing "refund" is refunded, anything containing "cancel" is a
// cancellation (pending refund when it also mentions payment).
func (b Booking) Canonical() CanonicalStatus {
	s := strings.ToLower(strings.TrimSpace(b.Status))
	switch {
	case s == strings.ToLower(StatusConfirmed):
		return CanonicalConfirmed
	case strings.Contains(s, "refund"):
		return CanonicalRefunded
	case s == strings.ToLower(StatusCancelPaymentLeft):
		return CanonicalCancelPendingRefund
	case strings.Contains(s, "cancel") && strings.Contains(s, "payment"):
		return CanonicalCancelPendingRefund
	case strings.Contains(s, "cancel"):
		return CanonicalCancelled
	default:
		return CanonicalUnknown
	}
}

// IsRefundable reports whether the booking sits in the actionable refund
// queue.
func (b Booking) IsRefundable() bool {
	return b.Canonical() == CanonicalCancelPendingRefund
}
