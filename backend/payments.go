package backend

import (
	"context"
	"net/url"
)

// CreatePaymentIntent starts a payment for an approved consultation. The
// payment provider's state machine lives behind the backend; the portal only
// relays the client secret to the payment page.
func (c *Client) CreatePaymentIntent(ctx context.Context, connectionID string) (PaymentIntent, error) {
	var out PaymentIntent
	payload := map[string]string{"connection_id": connectionID}
	err := c.do(ctx, "POST", "/payments/intent", payload, &out)
	return out, err
}

// ConfirmPayment records a completed payment.
func (c *Client) ConfirmPayment(ctx context.Context, intentID string) (PaymentIntent, error) {
	var out PaymentIntent
	err := c.do(ctx, "POST", "/payments/"+url.PathEscape(intentID)+"/confirm", nil, &out)
	return out, err
}

// Negotiations lists fee negotiations visible to the authenticated principal.
func (c *Client) Negotiations(ctx context.Context) ([]Negotiation, error) {
	var out []Negotiation
	err := c.do(ctx, "GET", "/negotiations", nil, &out)
	return out, err
}

// RespondNegotiation submits a mentor's decision on a fee negotiation:
// action is accept, decline, or counter (with a counter amount in cents).
func (c *Client) RespondNegotiation(ctx context.Context, id, action string, counterCents int64) (Negotiation, error) {
	var out Negotiation
	payload := map[string]any{"action": action}
	if action == "counter" {
		payload["counter_cents"] = counterCents
	}
	err := c.do(ctx, "POST", "/negotiations/"+url.PathEscape(id)+"/respond", payload, &out)
	return out, err
}
