// Package services – CompanyService
//
// This file implements CompanyService, which owns the company lifecycle:
// listing, lookup by code, creation, update of name/description, and deletion.
// Not-found conditions are translated into ErrCompanyNotFound; every other
// store failure (duplicate code, CHECK violations, foreign key RESTRICT on
// delete) propagates unchanged and is rendered as unhandled.
//
// Observability: all public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/biztime-api/internal/domain"
	"github.com/tbourn/biztime-api/internal/events"
	"github.com/tbourn/biztime-api/internal/repo"
)

// CompanyService coordinates company persistence and change events.
type CompanyService struct {
	DB     *gorm.DB
	Events events.Publisher
}

// NewCompanyService constructs a CompanyService. A nil publisher disables events.
func NewCompanyService(db *gorm.DB, pub events.Publisher) *CompanyService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &CompanyService{DB: db, Events: pub}
}

func (s *CompanyService) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/CompanyService").Start(ctx, name, trace.WithAttributes(attrs...))
}

// List returns every company projected to code and name.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	ctx, span := s.span(ctx, "List")
	defer span.End()

	return repo.ListCompanies(ctx, s.DB)
}

// Get returns the company identified by code.
func (s *CompanyService) Get(ctx context.Context, code string) (*domain.Company, error) {
	ctx, span := s.span(ctx, "Get", attribute.String("company.code", code))
	defer span.End()

	c, err := repo.GetCompany(ctx, s.DB, code)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	return c, err
}

// Create inserts c as submitted. Field validation is left to the store.
func (s *CompanyService) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	ctx, span := s.span(ctx, "Create", attribute.String("company.code", c.Code))
	defer span.End()

	if err := repo.CreateCompany(ctx, s.DB, c); err != nil {
		span.RecordError(err)
		return nil, err
	}
	publish(ctx, s.Events, events.CompanyCreated, c)
	return c, nil
}

// Update overwrites name and description of company code and returns the
// stored row. Nil arguments are written as NULL.
func (s *CompanyService) Update(ctx context.Context, code string, name, description *string) (*domain.Company, error) {
	ctx, span := s.span(ctx, "Update", attribute.String("company.code", code))
	defer span.End()

	var out *domain.Company
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateCompany(ctx, tx, code, name, description); err != nil {
			return err
		}
		c, err := repo.GetCompany(ctx, tx, code)
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	publish(ctx, s.Events, events.CompanyUpdated, out)
	return out, nil
}

// Delete removes company code. Companies referenced by invoices cannot be
// removed; that store error is returned unclassified.
func (s *CompanyService) Delete(ctx context.Context, code string) error {
	ctx, span := s.span(ctx, "Delete", attribute.String("company.code", code))
	defer span.End()

	err := repo.DeleteCompany(ctx, s.DB, code)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrCompanyNotFound
	}
	if err != nil {
		span.RecordError(err)
		return err
	}
	publish(ctx, s.Events, events.CompanyDeleted, map[string]string{"code": code})
	return nil
}
