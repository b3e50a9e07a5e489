package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ktsujino/listlens"
	lenslog "github.com/ktsujino/listlens/slog"
	"github.com/ktsujino/listlens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("logs site, keyword, and record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *listlens.Run) error {
				return nil
			},
		}

		svc := lenslog.NewLoggingRunService(inner, logger)
		err := svc.CreateRun(context.Background(), &listlens.Run{
			Site:    "mercari",
			Keyword: "pokemon",
			Records: []listlens.Record{{"url": "u1"}, {"url": "u2"}},
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "run create")
		assert.Contains(t, output, "site=mercari")
		assert.Contains(t, output, "keyword=pokemon")
		assert.Contains(t, output, "records=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *listlens.Run) error {
				return errors.New("disk full")
			},
		}

		svc := lenslog.NewLoggingRunService(inner, logger)
		err := svc.CreateRun(context.Background(), &listlens.Run{Site: "mercari", Keyword: "x"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RunService{
		DeleteRunFn: func(ctx context.Context, id string) error {
			return nil
		},
	}

	svc := lenslog.NewLoggingRunService(inner, logger)
	require.NoError(t, svc.DeleteRun(context.Background(), "r1"))

	output := buf.String()
	assert.Contains(t, output, "run delete")
	assert.Contains(t, output, "id=r1")
}
