// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Invoice model.
package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/biztime-api/internal/domain"
)

// ListInvoices returns all invoices with only id and comp_code loaded.
func ListInvoices(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	err := db.WithContext(ctx).
		Select("id", "comp_code").
		Find(&out).Error
	return out, err
}

// GetInvoice fetches an invoice by id, or returns ErrNotFound.
func GetInvoice(ctx context.Context, db *gorm.DB, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice inserts an unpaid invoice for compCode. AddDate is set to the
// current UTC time at microsecond precision, the finest PostgreSQL stores, so
// the returned invoice equals a later read. Paid and paid_date keep their
// column defaults.
//
// A comp_code that references no company violates the foreign key and an
// invalid (missing) amount violates NOT NULL; both come back as raw errors.
func CreateInvoice(ctx context.Context, db *gorm.DB, compCode string, amt decimal.NullDecimal) (*domain.Invoice, error) {
	inv := &domain.Invoice{
		CompCode: compCode,
		Amt:      amt,
		AddDate:  time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateInvoiceAmt overwrites the amount of invoice id. Paid state is never
// touched. If no rows are affected it returns ErrNotFound.
func UpdateInvoiceAmt(ctx context.Context, db *gorm.DB, id int64, amt decimal.NullDecimal) error {
	res := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("amt", amt)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteInvoice removes invoice id. If no rows are affected it returns ErrNotFound.
func DeleteInvoice(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
