package refund

import (
	"context"

	razorpay "github.com/razorpay/razorpay-go"
)

// refundNote is attached to every gateway refund for the audit trail.
const refundNote = "Admin processed refund for cancelled ticket"

// Gateway abstracts the payment provider's refund operation. amountMinor is
// in the gateway's minor currency unit (paise).
type Gateway interface {
	Refund(ctx context.Context, paymentID string, amountMinor int) (map[string]interface{}, error)
}

// RazorpayGateway issues refunds through the Razorpay REST API.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds a gateway from API credentials. Returns nil when
// either credential is absent, which the refund service reports as a server
// misconfiguration.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	if keyID == "" || keySecret == "" {
		return nil
	}
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// Refund issues a normal-speed refund against the captured payment. The SDK
// performs a synchronous HTTP call; the gateway's refund object is returned
// as-is.
func (g *RazorpayGateway) Refund(_ context.Context, paymentID string, amountMinor int) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"speed": "normal",
		"notes": map[string]interface{}{
			"reason": refundNote,
		},
	}
	return g.client.Payment.Refund(paymentID, amountMinor, data, nil)
}
