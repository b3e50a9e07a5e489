package mock

import (
	"context"

	"github.com/ktsujino/listlens"
)

var _ listlens.RunService = (*RunService)(nil)

// RunService is a mock implementation of listlens.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *listlens.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*listlens.Run, error)
	FindRunsFn    func(ctx context.Context, filter listlens.RunFilter) ([]*listlens.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *listlens.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*listlens.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter listlens.RunFilter) ([]*listlens.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
