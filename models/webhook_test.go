package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizedEvent(t *testing.T) {
	assert.True(t, RecognizedEvent("payment.captured"))
	assert.True(t, RecognizedEvent("payment.created"))
	assert.True(t, RecognizedEvent("payment.authorized"))
	assert.True(t, RecognizedEvent("payment.failed"))

	assert.False(t, RecognizedEvent("refund.created"))
	assert.False(t, RecognizedEvent("order.paid"))
	assert.False(t, RecognizedEvent(""))
}

func TestWebhookEventExtraction(t *testing.T) {
	body := `{
		"event": "payment.captured",
		"payload": {
			"payment": {
				"entity": {
					"id": "pay_1",
					"order_id": "order_1",
					"status": "captured",
					"amount": 9900,
					"currency": "INR",
					"email": "a@b.com",
					"contact": "+911234567890",
					"method": "upi",
					"notes": {"name": "Asha", "city": "Pune"},
					"created_at": 1700000000,
					"captured_at": 1700000100
				}
			}
		}
	}`

	var event WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(body), &event))

	payment := event.Payment()
	require.NotNil(t, payment)
	assert.Equal(t, "pay_1", payment.ID)
	assert.Equal(t, int64(9900), payment.Amount)
	assert.Equal(t, "Asha", payment.Notes["name"])
}

func TestWebhookEventMissingEntity(t *testing.T) {
	var event WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(`{"event":"payment.captured","payload":{}}`), &event))
	assert.Nil(t, event.Payment())
}

// Razorpay serializes empty notes as [] instead of {}.
func TestPaymentNotesToleratesArray(t *testing.T) {
	var payment PaymentEntity
	require.NoError(t, json.Unmarshal([]byte(`{"id":"pay_2","notes":[]}`), &payment))
	assert.Empty(t, payment.Notes)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"pay_3","notes":{"name":"Ravi"}}`), &payment))
	assert.Equal(t, "Ravi", payment.Notes["name"])
}

func TestRowDefaults(t *testing.T) {
	payment := PaymentEntity{
		ID:        "pay_4",
		Status:    PaymentStatusCaptured,
		Amount:    12550,
		CreatedAt: 1700000000,
	}

	row := payment.Row("payment.captured")

	assert.Equal(t, "pay_4", row.PaymentID)
	assert.Equal(t, "", row.OrderID)
	assert.Equal(t, "", row.Email)
	assert.Equal(t, "", row.Phone)
	assert.Equal(t, "", row.CustomerName)
	assert.Equal(t, "", row.City)
	assert.Equal(t, "INR", row.Currency)
	assert.Equal(t, "payment.captured", row.Event)
	assert.Equal(t, 125.50, row.Amount)
}

func TestPaidAtDerivation(t *testing.T) {
	payment := PaymentEntity{CreatedAt: 1700000000, CapturedAt: 1700000100}
	assert.Equal(t, time.Unix(1700000100, 0), payment.PaidAt())

	payment.CapturedAt = 0
	assert.Equal(t, time.Unix(1700000000, 0), payment.PaidAt())

	payment.CreatedAt = 0
	assert.WithinDuration(t, time.Now(), payment.PaidAt(), time.Minute)
}
