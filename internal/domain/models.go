// Package domain defines the persistence models for companies and invoices.
// These types are mapped with GORM and form the core data layer of the
// service; HTTP projections live in the handlers package.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is a business identified by a short, client-supplied code.
//
// Fields:
//   - Code: primary key chosen by the client (never generated server side).
//   - Name: display name; the store rejects empty values.
//   - Description: free text, nullable.
//
// Companies are referenced (not owned) by invoices through Invoice.CompCode.
type Company struct {
	Code        string  `json:"code"        gorm:"type:text;primaryKey;check:chk_companies_code,code <> ''"`
	Name        string  `json:"name"        gorm:"type:text;not null;check:chk_companies_name,name <> ''"`
	Description *string `json:"description" gorm:"type:text"`
}

// TableName returns the database table name for Company.
func (Company) TableName() string { return "companies" }

// Invoice is an amount billed to a company.
//
// Fields:
//   - ID: auto-incremented primary key.
//   - CompCode: foreign key to companies.code. Deleting a company that still
//     has invoices is rejected by the store (RESTRICT).
//   - Amt: monetary amount, numeric(10,2). Nullable in Go so that a missing
//     amount reaches the store and is rejected by the NOT NULL constraint.
//   - Paid / PaidDate: payment state; never changed through the API.
//   - AddDate: creation timestamp assigned at insert.
type Invoice struct {
	ID       int64               `json:"id"        gorm:"primaryKey;autoIncrement"`
	CompCode string              `json:"comp_code" gorm:"type:text;not null;index:idx_invoices_comp_code"`
	Amt      decimal.NullDecimal `json:"amt"       gorm:"type:numeric(10,2);not null"`
	Paid     bool                `json:"paid"      gorm:"not null;default:false"`
	AddDate  time.Time           `json:"add_date"  gorm:"not null"`
	PaidDate *time.Time          `json:"paid_date"`

	// Company is the referenced company. It is only used to declare the
	// foreign key; reads embed the company through a separate lookup.
	Company *Company `json:"-" gorm:"foreignKey:CompCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Invoice.
func (Invoice) TableName() string { return "invoices" }
