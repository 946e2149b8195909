package models

import (
	"encoding/json"
	"time"
)

// Payment statuses reported by the gateway
const (
	PaymentStatusCreated    = "created"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusFailed     = "failed"
)

// recognizedEvents is the allow-list of payment lifecycle events this
// receiver processes. Everything else is acknowledged and skipped.
var recognizedEvents = map[string]bool{
	"payment.created":    true,
	"payment.authorized": true,
	"payment.captured":   true,
	"payment.failed":     true,
}

// RecognizedEvent reports whether event is on the allow-list.
func RecognizedEvent(event string) bool {
	return recognizedEvents[event]
}

// WebhookEvent is the notification envelope Razorpay posts to the
// webhook endpoint.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity *PaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Payment returns the embedded payment entity, or nil when the payload
// carries none. A missing entity is not an error; events for other
// resources simply have nothing for us to store.
func (e *WebhookEvent) Payment() *PaymentEntity {
	return e.Payload.Payment.Entity
}

// PaymentEntity is the gateway's payment object as delivered in the
// envelope. Amount and timestamps stay in the gateway's units (paise,
// Unix seconds) until the row is built.
type PaymentEntity struct {
	ID         string       `json:"id"`
	OrderID    string       `json:"order_id"`
	Status     string       `json:"status"`
	Amount     int64        `json:"amount"`
	Currency   string       `json:"currency"`
	Email      string       `json:"email"`
	Contact    string       `json:"contact"`
	Method     string       `json:"method"`
	Notes      PaymentNotes `json:"notes"`
	CreatedAt  int64        `json:"created_at"`
	CapturedAt int64        `json:"captured_at"`
}

// PaymentNotes is the free-form notes map on a payment. Razorpay sends
// an empty JSON array instead of an object when no notes were attached,
// so anything that is not an object decodes to an empty map.
type PaymentNotes map[string]string

// UnmarshalJSON implements json.Unmarshaler.
func (n *PaymentNotes) UnmarshalJSON(data []byte) error {
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		*n = PaymentNotes{}
		return nil
	}
	*n = m
	return nil
}

// Row projects the entity into a storable CapturedPayment. All
// defaulting happens here, once: optional strings become "", the
// currency falls back to INR, and paid-at prefers captured_at over
// created_at over the current time.
func (p *PaymentEntity) Row(event string) *CapturedPayment {
	currency := p.Currency
	if currency == "" {
		currency = "INR"
	}

	return &CapturedPayment{
		PaymentID:    p.ID,
		OrderID:      p.OrderID,
		Email:        p.Email,
		Phone:        p.Contact,
		CustomerName: p.Notes["name"],
		City:         p.Notes["city"],
		Amount:       float64(p.Amount) / 100,
		Currency:     currency,
		Status:       p.Status,
		Event:        event,
		Method:       p.Method,
		PaidAt:       p.PaidAt(),
	}
}

// PaidAt derives the payment timestamp. captured_at is only set once
// the payment is captured; created_at is always present in practice.
func (p *PaymentEntity) PaidAt() time.Time {
	switch {
	case p.CapturedAt > 0:
		return time.Unix(p.CapturedAt, 0)
	case p.CreatedAt > 0:
		return time.Unix(p.CreatedAt, 0)
	default:
		return time.Now()
	}
}
