// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Company model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a company is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - ListCompanies(ctx, db) -> []domain.Company, error
//     Returns every company projected to (code, name), in store order.
//
//   - GetCompany(ctx, db, code) -> *domain.Company, error
//     Fetches a single company, or ErrNotFound if missing.
//
//   - CreateCompany(ctx, db, c) -> error
//     Inserts a company exactly as given; the store validates it.
//
//   - UpdateCompany(ctx, db, code, name, description) -> error
//     Overwrites name and description. Returns ErrNotFound if no row matched.
//
//   - DeleteCompany(ctx, db, code) -> error
//     Removes a company. Returns ErrNotFound if no row matched.
//
// Usage:
//
//	c, err := repo.GetCompany(ctx, db, "apple")
//	if errors.Is(err, repo.ErrNotFound) {
//	    // handle missing
//	} else if err != nil {
//	    // handle DB failure
//	}
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/biztime-api/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListCompanies returns all companies with only code and name loaded.
// It returns an empty slice when the table is empty.
func ListCompanies(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	out := []domain.Company{}
	err := db.WithContext(ctx).
		Select("code", "name").
		Find(&out).Error
	return out, err
}

// GetCompany fetches a single company by code. If the record does not exist,
// it returns ErrNotFound.
func GetCompany(ctx context.Context, db *gorm.DB, code string) (*domain.Company, error) {
	var c domain.Company
	err := db.WithContext(ctx).
		Where("code = ?", code).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCompany inserts c. Empty codes or names and duplicate codes are
// rejected by the store and returned as raw errors.
func CreateCompany(ctx context.Context, db *gorm.DB, c *domain.Company) error {
	return db.WithContext(ctx).Create(c).Error
}

// UpdateCompany sets name and description of the company identified by code.
// Nil values are written as NULL. If no rows are affected it returns ErrNotFound.
func UpdateCompany(ctx context.Context, db *gorm.DB, code string, name, description *string) error {
	res := db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("code = ?", code).
		Updates(map[string]any{
			"name":        nullable(name),
			"description": nullable(description),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCompany removes the company identified by code. If no rows are
// affected it returns ErrNotFound. A company still referenced by invoices
// cannot be deleted; the store's foreign key error is returned as is.
func DeleteCompany(ctx context.Context, db *gorm.DB, code string) error {
	res := db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&domain.Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// nullable maps a nil pointer to SQL NULL.
func nullable(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
