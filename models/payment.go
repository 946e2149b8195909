package models

import (
	"time"
)

// CapturedPayment is one persisted webhook payment. Rows are
// insert-only: the unique index on PaymentID turns duplicate webhook
// deliveries into no-ops, and nothing ever updates or deletes a row.
type CapturedPayment struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	PaymentID    string    `json:"payment_id" gorm:"size:64;not null;uniqueIndex"`
	OrderID      string    `json:"order_id" gorm:"size:64"`
	Email        string    `json:"email" gorm:"size:255"`
	Phone        string    `json:"phone" gorm:"size:32"`
	CustomerName string    `json:"customer_name" gorm:"size:255"`
	City         string    `json:"city" gorm:"size:128"`
	Amount       float64   `json:"amount" gorm:"type:decimal(12,2)"` // major units (rupees)
	Currency     string    `json:"currency" gorm:"size:8"`
	Status       string    `json:"status" gorm:"size:32"`
	Event        string    `json:"event" gorm:"size:64"`
	Method       string    `json:"method" gorm:"size:32"`
	PaidAt       time.Time `json:"paid_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName maps the primary store.
func (CapturedPayment) TableName() string {
	return "crm_payments"
}

// MicroSlabPayment mirrors CapturedPayment in the micro-amount slab table.
type MicroSlabPayment CapturedPayment

// TableName maps the micro slab store.
func (MicroSlabPayment) TableName() string {
	return "crm_payments_micro"
}

// StandardSlabPayment mirrors CapturedPayment in the standard-amount slab table.
type StandardSlabPayment CapturedPayment

// TableName maps the standard slab store.
func (StandardSlabPayment) TableName() string {
	return "crm_payments_standard"
}
