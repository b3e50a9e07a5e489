package listlens

import "context"

// RecordWriter exports a sequence of same-shaped records. Implementations
// derive the column set from the union of all field names and render missing
// fields as empty cells.
type RecordWriter interface {
	// WriteRecords writes the records and returns the absolute output path.
	WriteRecords(ctx context.Context, records []Record) (string, error)
}
