package listlens

import (
	"context"
	"time"
)

// Run is one completed scrape: the site and keyword it targeted and the
// records it produced, in link-discovery order. A run with zero records is a
// valid outcome, not an error.
type Run struct {
	ID        string    `json:"id"`
	Site      string    `json:"site"`
	Keyword   string    `json:"keyword"`
	StartedAt time.Time `json:"startedAt"`
	Records   []Record  `json:"records"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Site == "" {
		return Errorf(EINVALID, "run site required")
	}
	if r.Keyword == "" {
		return Errorf(EINVALID, "run keyword required")
	}
	return nil
}

// RunService persists scrape runs for later inspection and comparison.
type RunService interface {
	// CreateRun persists a run and its records.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with its records.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first, without
	// their records.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and its records.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID      *string `json:"id"`
	Site    *string `json:"site"`
	Keyword *string `json:"keyword"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
