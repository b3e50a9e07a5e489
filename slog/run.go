// Package slog provides logging decorators for listlens services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ktsujino/listlens"
)

// Ensure LoggingRunService implements listlens.RunService.
var _ listlens.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with operation logging.
type LoggingRunService struct {
	next   listlens.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next listlens.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *listlens.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("run create",
			"site", run.Site,
			"keyword", run.Keyword,
			"records", len(run.Records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRunByID delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (run *listlens.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("run find",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter listlens.RunFilter) (runs []*listlens.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("run list",
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

// DeleteRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("run delete",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}
