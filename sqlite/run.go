package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ktsujino/listlens"
)

// Compile-time interface verification.
var _ listlens.RunService = (*RunService)(nil)

// RunService implements listlens.RunService using SQLite. Records are
// stored as JSON field maps so per-site schema differences never require a
// migration.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun persists a run and its records in discovery order.
func (s *RunService) CreateRun(ctx context.Context, run *listlens.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, site, keyword, started_at, record_count)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Site, run.Keyword, run.StartedAt.Format(time.RFC3339), len(run.Records))
	if err != nil {
		return err
	}

	for i, rec := range run.Records {
		fields, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode record fields: %w", err)
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO records (id, run_id, position, url, fields)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), run.ID, i, rec[listlens.FieldURL], string(fields))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindRunByID retrieves a run with its records.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*listlens.Run, error) {
	var run listlens.Run
	var startedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, site, keyword, started_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Site, &run.Keyword, &startedAt)

	if err == sql.ErrNoRows {
		return nil, listlens.Errorf(listlens.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT fields
		FROM records
		WHERE run_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var fields string
		if err := rows.Scan(&fields); err != nil {
			return nil, err
		}
		var rec listlens.Record
		if err := json.Unmarshal([]byte(fields), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record fields: %w", err)
		}
		run.Records = append(run.Records, rec)
	}

	return &run, rows.Err()
}

// FindRuns retrieves runs matching the filter, newest first, without their
// records.
func (s *RunService) FindRuns(ctx context.Context, filter listlens.RunFilter) ([]*listlens.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site, keyword, started_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, *filter.Site)
	}
	if filter.Keyword != nil {
		query.WriteString(" AND keyword = ?")
		args = append(args, *filter.Keyword)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*listlens.Run
	for rows.Next() {
		var run listlens.Run
		var startedAt string

		if err := rows.Scan(&run.ID, &run.Site, &run.Keyword, &startedAt); err != nil {
			return nil, err
		}

		run.StartedAt, err = parseRFC3339(startedAt, "started_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run; its records cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return listlens.Errorf(listlens.ENOTFOUND, "run not found")
	}

	return nil
}
