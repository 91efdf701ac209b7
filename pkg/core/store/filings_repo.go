package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/models"
)

// FilingsRepo persists standardized filings keyed by SEC accession number.
type FilingsRepo struct {
	pool *pgxpool.Pool
}

// NewFilingsRepo creates a repository backed by the shared pool.
func NewFilingsRepo(pool *pgxpool.Pool) *FilingsRepo {
	return &FilingsRepo{pool: pool}
}

// FilingRecord is one stored filing: its metadata plus the standardized
// facts as they came out of the engine.
type FilingRecord struct {
	Meta          models.FilingMetadata `json:"meta"`
	Facts         []models.Fact         `json:"facts"`
	Roles         []string              `json:"roles"`
	ExcludedFacts int                   `json:"excluded_facts"`
	StoredAt      time.Time             `json:"stored_at"`
}

// Save upserts one standardized filing. Re-saving the same accession
// replaces the stored facts, so reprocessing a filing is idempotent.
func (r *FilingsRepo) Save(ctx context.Context, inst *filing.Instance) error {
	if r.pool == nil {
		return fmt.Errorf("filings repo: no database pool")
	}

	rec := FilingRecord{
		Meta:          inst.Meta,
		Facts:         inst.Facts().All(),
		Roles:         inst.Roles(),
		ExcludedFacts: inst.ExcludedFacts(),
		StoredAt:      time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal filing record: %w", err)
	}

	query := `
		INSERT INTO filings (
			accession_number, cik, form_type, fiscal_year, fiscal_period,
			filing_date, period_end, is_amended, data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (accession_number)
		DO UPDATE SET
			data = EXCLUDED.data,
			is_amended = EXCLUDED.is_amended,
			updated_at = NOW()
	`
	_, err = r.pool.Exec(ctx, query,
		inst.Meta.AccessionNumber, inst.Meta.CIK, inst.Meta.Form,
		inst.Meta.FiscalYear, inst.Meta.FiscalPeriod,
		inst.Meta.FilingDate, inst.Meta.PeriodEnd, inst.Meta.IsAmended, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save filing %s: %w", inst.Meta.AccessionNumber, err)
	}
	return nil
}

// Get retrieves one stored filing by accession number. A cache miss
// returns (nil, nil).
func (r *FilingsRepo) Get(ctx context.Context, accessionNumber string) (*FilingRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("filings repo: no database pool")
	}

	query := `SELECT data FROM filings WHERE accession_number = $1 LIMIT 1`
	var data []byte
	if err := r.pool.QueryRow(ctx, query, accessionNumber).Scan(&data); err != nil {
		return nil, nil
	}
	var rec FilingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored filing: %w", err)
	}
	return &rec, nil
}

// ListByCIK retrieves stored filings for one registrant, newest filing
// date first.
func (r *FilingsRepo) ListByCIK(ctx context.Context, cik string) ([]*FilingRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("filings repo: no database pool")
	}

	query := `
		SELECT data FROM filings
		WHERE cik = $1
		ORDER BY filing_date DESC, accession_number DESC
	`
	rows, err := r.pool.Query(ctx, query, cik)
	if err != nil {
		return nil, fmt.Errorf("failed to list filings for %s: %w", cik, err)
	}
	defer rows.Close()

	var records []*FilingRecord
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan filing row: %w", err)
		}
		var rec FilingRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored filing: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// Exists reports whether a filing is already stored.
func (r *FilingsRepo) Exists(ctx context.Context, accessionNumber string) bool {
	if r.pool == nil {
		return false
	}
	query := `SELECT 1 FROM filings WHERE accession_number = $1 LIMIT 1`
	var one int
	return r.pool.QueryRow(ctx, query, accessionNumber).Scan(&one) == nil
}
