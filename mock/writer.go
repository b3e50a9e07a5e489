package mock

import (
	"context"

	"github.com/ktsujino/listlens"
)

var _ listlens.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of listlens.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []listlens.Record) (string, error)
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []listlens.Record) (string, error) {
	return w.WriteRecordsFn(ctx, records)
}
