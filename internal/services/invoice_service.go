// Package services – InvoiceService
//
// This file implements InvoiceService. Reads embed the owning company on a
// second lookup; updates change the amount only and never touch the paid
// state.
package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/biztime-api/internal/domain"
	"github.com/tbourn/biztime-api/internal/events"
	"github.com/tbourn/biztime-api/internal/repo"
)

// InvoiceService coordinates invoice persistence and change events.
type InvoiceService struct {
	DB     *gorm.DB
	Events events.Publisher
}

// NewInvoiceService constructs an InvoiceService. A nil publisher disables events.
func NewInvoiceService(db *gorm.DB, pub events.Publisher) *InvoiceService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &InvoiceService{DB: db, Events: pub}
}

func (s *InvoiceService) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/InvoiceService").Start(ctx, name, trace.WithAttributes(attrs...))
}

// List returns every invoice projected to id and comp_code.
func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	ctx, span := s.span(ctx, "List")
	defer span.End()

	return repo.ListInvoices(ctx, s.DB)
}

// Get returns invoice id with Company populated from a second lookup. A
// dangling comp_code leaves Company nil and is not an error.
func (s *InvoiceService) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	ctx, span := s.span(ctx, "Get", attribute.Int64("invoice.id", id))
	defer span.End()

	inv, err := repo.GetInvoice(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}

	c, err := repo.GetCompany(ctx, s.DB, inv.CompCode)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		span.SetAttributes(attribute.Bool("invoice.orphaned", true))
	case err != nil:
		return nil, err
	default:
		inv.Company = c
	}
	return inv, nil
}

// Create inserts an unpaid invoice. An unknown comp_code or a missing amount
// is rejected by the store and returned unclassified.
func (s *InvoiceService) Create(ctx context.Context, compCode string, amt decimal.NullDecimal) (*domain.Invoice, error) {
	ctx, span := s.span(ctx, "Create", attribute.String("company.code", compCode))
	defer span.End()

	inv, err := repo.CreateInvoice(ctx, s.DB, compCode, amt)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	publish(ctx, s.Events, events.InvoiceCreated, inv)
	return inv, nil
}

// Update sets the amount of invoice id and returns the stored row.
func (s *InvoiceService) Update(ctx context.Context, id int64, amt decimal.NullDecimal) (*domain.Invoice, error) {
	ctx, span := s.span(ctx, "Update", attribute.Int64("invoice.id", id))
	defer span.End()

	var out *domain.Invoice
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateInvoiceAmt(ctx, tx, id, amt); err != nil {
			return err
		}
		inv, err := repo.GetInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		out = inv
		return nil
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	publish(ctx, s.Events, events.InvoiceUpdated, out)
	return out, nil
}

// Delete removes invoice id.
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	ctx, span := s.span(ctx, "Delete", attribute.Int64("invoice.id", id))
	defer span.End()

	err := repo.DeleteInvoice(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrInvoiceNotFound
	}
	if err != nil {
		span.RecordError(err)
		return err
	}
	publish(ctx, s.Events, events.InvoiceDeleted, map[string]int64{"id": id})
	return nil
}
