package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourusername/screening-web/internal/model"
)

const reportsSchema = `
	CREATE TABLE IF NOT EXISTS shared_reports (
		id          UUID PRIMARY KEY,
		job_role    TEXT NOT NULL,
		report      JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// ReportRepo persists shared reports in PostgreSQL
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// EnsureSchema creates the shared_reports table if it does not exist
func (r *ReportRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, reportsSchema); err != nil {
		return fmt.Errorf("creating shared_reports table: %w", err)
	}
	return nil
}

// Save stores a report and returns it with its share id
func (r *ReportRepo) Save(ctx context.Context, report model.Report) (*model.SharedReport, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}

	shared := model.SharedReport{ID: uuid.New(), Report: report}
	err = r.pool.QueryRow(ctx, `
		INSERT INTO shared_reports (id, job_role, report)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, shared.ID, report.JobRole, string(raw)).Scan(&shared.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting shared report: %w", err)
	}
	return &shared, nil
}

// FindByID returns a shared report, or nil if there is none
func (r *ReportRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SharedReport, error) {
	var (
		raw    []byte
		shared = model.SharedReport{ID: id}
	)
	err := r.pool.QueryRow(ctx, `
		SELECT report, created_at
		FROM shared_reports
		WHERE id = $1
	`, id).Scan(&raw, &shared.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding shared report: %w", err)
	}

	if err := json.Unmarshal(raw, &shared.Report); err != nil {
		return nil, fmt.Errorf("decoding shared report: %w", err)
	}
	return &shared, nil
}
