package controllers

import (
	"context"
	"fmt"

	"github.com/nithin-912/PayBridge/models"
	"github.com/nithin-912/PayBridge/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormPaymentStore persists payments through gorm. Idempotency comes
// from ON CONFLICT (payment_id) DO NOTHING against the unique index:
// the database is the only serialization point, so duplicates arriving
// on different connections need no application-level locking.
type gormPaymentStore struct {
	db *gorm.DB
}

// NewPaymentStore returns a PaymentStore backed by the given database.
func NewPaymentStore(db *gorm.DB) PaymentStore {
	return &gormPaymentStore{db: db}
}

var paymentIDConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "payment_id"}},
	DoNothing: true,
}

func (s *gormPaymentStore) SavePayment(ctx context.Context, payment *models.CapturedPayment) (bool, error) {
	// Insert a copy so gorm's primary-key write-back never leaks one
	// table's id into another insert.
	row := *payment
	result := s.db.WithContext(ctx).Clauses(paymentIDConflict).Create(&row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *gormPaymentStore) SaveSlabPayment(ctx context.Context, slab string, payment *models.CapturedPayment) (bool, error) {
	var result *gorm.DB
	switch slab {
	case utils.SlabMicro:
		row := models.MicroSlabPayment(*payment)
		row.ID = 0
		result = s.db.WithContext(ctx).Clauses(paymentIDConflict).Create(&row)
	case utils.SlabStandard:
		row := models.StandardSlabPayment(*payment)
		row.ID = 0
		result = s.db.WithContext(ctx).Clauses(paymentIDConflict).Create(&row)
	default:
		return false, fmt.Errorf("unknown slab %q", slab)
	}
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
