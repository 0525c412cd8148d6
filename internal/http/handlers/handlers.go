package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tbourn/biztime-api/internal/domain"
)

//
// Service contracts (context-aware)
//

// CompanyService defines company lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CompanyService interface {
	// List returns every company (code and name loaded).
	List(ctx context.Context) ([]domain.Company, error)
	// Get returns the company identified by code.
	Get(ctx context.Context, code string) (*domain.Company, error)
	// Create inserts a company as submitted.
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	// Update replaces name and description of company code.
	Update(ctx context.Context, code string, name, description *string) (*domain.Company, error)
	// Delete removes company code.
	Delete(ctx context.Context, code string) error
}

// InvoiceService defines invoice lifecycle operations consumed by HTTP handlers.
type InvoiceService interface {
	// List returns every invoice (id and comp_code loaded).
	List(ctx context.Context) ([]domain.Invoice, error)
	// Get returns invoice id with its Company populated when it exists.
	Get(ctx context.Context, id int64) (*domain.Invoice, error)
	// Create inserts an unpaid invoice for compCode.
	Create(ctx context.Context, compCode string, amt decimal.NullDecimal) (*domain.Invoice, error)
	// Update changes the amount of invoice id.
	Update(ctx context.Context, id int64, amt decimal.NullDecimal) (*domain.Invoice, error)
	// Delete removes invoice id.
	Delete(ctx context.Context, id int64) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for companies and invoices.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	companySvc CompanyService
	invoiceSvc InvoiceService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(companySvc CompanyService, invoiceSvc InvoiceService) *Handlers {
	return &Handlers{companySvc: companySvc, invoiceSvc: invoiceSvc}
}
