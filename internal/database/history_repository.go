package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/offersentry/offersentry/internal/domain"
)

// snippetLimit caps how much posting text the audit row retains.
const snippetLimit = 500

// HistoryRepository persists the per-run audit trail.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert stores one completed run. The text snippet is truncated.
func (r *HistoryRepository) Insert(ctx context.Context, record *domain.AnalysisRecord) error {
	if len(record.TextSnippet) > snippetLimit {
		record.TextSnippet = record.TextSnippet[:snippetLimit]
	}

	query := `
		INSERT INTO analysis_history (run_id, text_snippet, company_name, verdict, risk_score, trust_level, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		record.RunID,
		record.TextSnippet,
		record.CompanyName,
		record.Verdict,
		record.RiskScore,
		record.TrustLevel,
		record.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis record: %w", err)
	}
	if id, idErr := res.LastInsertId(); idErr == nil {
		record.ID = id
	}
	return nil
}

// ListRecent returns the most recent runs, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	records := []domain.AnalysisRecord{}
	query := `
		SELECT id, run_id, text_snippet, company_name, verdict, risk_score, trust_level, analyzed_at
		FROM analysis_history
		ORDER BY analyzed_at DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("list analysis records: %w", err)
	}
	return records, nil
}

// GetByRunID returns one run's audit row.
func (r *HistoryRepository) GetByRunID(ctx context.Context, runID string) (*domain.AnalysisRecord, error) {
	var record domain.AnalysisRecord
	query := `
		SELECT id, run_id, text_snippet, company_name, verdict, risk_score, trust_level, analyzed_at
		FROM analysis_history
		WHERE run_id = ?
	`
	if err := r.db.GetContext(ctx, &record, query, runID); err != nil {
		return nil, fmt.Errorf("get analysis record: %w", err)
	}
	return &record, nil
}
