package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbourn/biztime-api/internal/domain"
)

//
// Requests
//

// CreateCompanyRequest is the JSON payload for creating a company.
type CreateCompanyRequest struct {
	Code        string  `json:"code"        example:"apple"`
	Name        string  `json:"name"        example:"Apple Computer"`
	Description *string `json:"description" example:"Maker of OSX."`
}

// UpdateCompanyRequest is the JSON payload for replacing a company's name and
// description. Absent fields are written as null.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"        example:"Apple Inc"`
	Description *string `json:"description" example:"Maker of iPhones."`
}

// CreateInvoiceRequest is the JSON payload for creating an invoice. amt may be
// a JSON number or a numeric string.
type CreateInvoiceRequest struct {
	CompCode string              `json:"comp_code" example:"apple"`
	Amt      decimal.NullDecimal `json:"amt"       swaggertype:"string" example:"350.00"`
}

// UpdateInvoiceRequest is the JSON payload for changing an invoice amount.
type UpdateInvoiceRequest struct {
	Amt decimal.NullDecimal `json:"amt" swaggertype:"string" example:"450.00"`
}

//
// Projections
//

// CompanySummary is the list projection of a company.
type CompanySummary struct {
	Code string `json:"code" example:"apple"`
	Name string `json:"name" example:"Apple Computer"`
}

// Company is the full projection of a company.
type Company struct {
	Code        string  `json:"code"        example:"apple"`
	Name        string  `json:"name"        example:"Apple Computer"`
	Description *string `json:"description" example:"Maker of OSX."`
}

// InvoiceSummary is the list projection of an invoice.
type InvoiceSummary struct {
	ID       int64  `json:"id"        example:"1"`
	CompCode string `json:"comp_code" example:"apple"`
}

// Invoice is the full projection of an invoice row.
type Invoice struct {
	ID       int64      `json:"id"        example:"1"`
	CompCode string     `json:"comp_code" example:"apple"`
	Amt      string     `json:"amt"       example:"350.00"`
	Paid     bool       `json:"paid"      example:"false"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceDetail is an invoice with its owning company embedded. Company is
// null when the invoice references a company that no longer exists.
type InvoiceDetail struct {
	Invoice
	Company *Company `json:"company"`
}

//
// Envelopes
//

// ListCompaniesResponse wraps the company list.
type ListCompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyResponse wraps a single company.
type CompanyResponse struct {
	Company Company `json:"company"`
}

// ListInvoicesResponse wraps the invoice list.
type ListInvoicesResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// InvoiceResponse wraps a single invoice without its company.
type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

// InvoiceDetailResponse wraps a single invoice with its company.
type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}

//
// Presenters
//

func presentCompany(c *domain.Company) Company {
	return Company{Code: c.Code, Name: c.Name, Description: c.Description}
}

func presentCompanies(in []domain.Company) []CompanySummary {
	out := make([]CompanySummary, 0, len(in))
	for _, c := range in {
		out = append(out, CompanySummary{Code: c.Code, Name: c.Name})
	}
	return out
}

func presentInvoice(inv *domain.Invoice) Invoice {
	return Invoice{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      formatAmount(inv.Amt),
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func presentInvoiceDetail(inv *domain.Invoice) InvoiceDetail {
	d := InvoiceDetail{Invoice: presentInvoice(inv)}
	if inv.Company != nil {
		c := presentCompany(inv.Company)
		d.Company = &c
	}
	return d
}

func presentInvoices(in []domain.Invoice) []InvoiceSummary {
	out := make([]InvoiceSummary, 0, len(in))
	for _, inv := range in {
		out = append(out, InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return out
}

// formatAmount renders a monetary amount with exactly two decimals.
func formatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
