// Package admin holds one-off maintenance tasks run by the api binary
// (for example `api -task seed`) instead of serving HTTP.
package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/biztime-api/internal/domain"
	"github.com/tbourn/biztime-api/internal/repo"
)

//go:embed seeds/biztime.json
var seedJSON []byte

type seedInvoice struct {
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	PaidDate *time.Time      `json:"paid_date"`
}

type seedCompany struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Invoices    []seedInvoice `json:"invoices"`
}

type seedFile struct {
	Companies []seedCompany `json:"companies"`
}

// SeedResult counts what a Seed run inserted.
type SeedResult struct {
	Companies int
	Invoices  int
}

// Seed inserts the sample companies and their invoices. It is idempotent per
// company: a company whose code already exists is skipped together with its
// invoices, so rerunning never duplicates rows.
func Seed(ctx context.Context, db *gorm.DB) (SeedResult, error) {
	return seed(ctx, db, seedJSON)
}

func seed(ctx context.Context, db *gorm.DB, raw []byte) (SeedResult, error) {
	var res SeedResult
	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return res, fmt.Errorf("decode seed file: %w", err)
	}
	lg := log.Ctx(ctx)

	for _, sc := range f.Companies {
		_, err := repo.GetCompany(ctx, db, sc.Code)
		if err == nil {
			lg.Info().Str("code", sc.Code).Msg("seed company exists")
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return res, fmt.Errorf("lookup company %q: %w", sc.Code, err)
		}

		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			c := &domain.Company{Code: sc.Code, Name: sc.Name, Description: sc.Description}
			if err := repo.CreateCompany(ctx, tx, c); err != nil {
				return err
			}
			for _, si := range sc.Invoices {
				inv := &domain.Invoice{
					CompCode: sc.Code,
					Amt:      decimal.NewNullDecimal(si.Amt),
					Paid:     si.Paid,
					AddDate:  time.Now().UTC(),
					PaidDate: si.PaidDate,
				}
				if err := tx.Create(inv).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return res, fmt.Errorf("seed company %q: %w", sc.Code, err)
		}
		res.Companies++
		res.Invoices += len(sc.Invoices)
		lg.Info().Str("code", sc.Code).Int("invoices", len(sc.Invoices)).Msg("seed company created")
	}
	return res, nil
}
