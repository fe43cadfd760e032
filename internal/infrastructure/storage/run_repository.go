package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

// Schema creates the run log table.
const Schema = `CREATE TABLE IF NOT EXISTS issue_runs (
    email_id      TEXT PRIMARY KEY,
    issue_number  INTEGER     NOT NULL,
    slug          TEXT        NOT NULL,
    status        TEXT        NOT NULL,
    subject       TEXT        NOT NULL,
    scheduled_for TIMESTAMPTZ NOT NULL,
    test_send     TEXT        NOT NULL DEFAULT '',
    recorded_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RunRepository persists created issues into Postgres.
type RunRepository struct {
	db *sql.DB
}

var (
	_ ports.RunRecorder = (*RunRepository)(nil)
	_ ports.RunLog      = (*RunRepository)(nil)
)

// NewRunRepository wires a sql.DB implementation.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// EnsureSchema creates the table when missing.
func (r *RunRepository) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create issue_runs: %w", err)
	}
	return nil
}

// RecordRun upserts the run keyed by the email id. Dry runs are ignored.
func (r *RunRepository) RecordRun(ctx context.Context, result domain.Result) error {
	if r.db == nil || result.DryRun || result.EmailID == "" {
		return nil
	}

	query, args, err := psql.Insert("issue_runs").
		Columns("email_id", "issue_number", "slug", "status", "subject", "scheduled_for", "test_send").
		Values(
			result.EmailID,
			result.IssueNumber,
			result.Slug,
			string(result.EmailStatus),
			result.SubjectLine,
			result.ScheduledFor,
			string(result.TestSend),
		).
		Suffix("ON CONFLICT (email_id) DO UPDATE SET status = EXCLUDED.status, test_send = EXCLUDED.test_send, recorded_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert run: %w", err)
	}

	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (r *RunRepository) RecentRuns(ctx context.Context, limit int) ([]domain.IssueRun, error) {
	if r.db == nil {
		return []domain.IssueRun{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query, args, err := psql.Select(
		"issue_number", "email_id", "slug", "status", "subject", "scheduled_for", "test_send", "recorded_at",
	).
		From("issue_runs").
		OrderBy("recorded_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	runs := make([]domain.IssueRun, 0, limit)
	for rows.Next() {
		var (
			run      domain.IssueRun
			status   string
			testSend string
		)
		if err := rows.Scan(
			&run.IssueNumber, &run.EmailID, &run.Slug, &status, &run.Subject,
			&run.ScheduledFor, &testSend, &run.RecordedAt,
		); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Status = domain.EmailStatus(status)
		run.TestSend = domain.TestSendOutcome(testSend)
		runs = append(runs, run)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return runs, nil
}
