// Package csv implements record export as Excel-compatible CSV files.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"os"
	"path/filepath"
	"sort"

	"github.com/ktsujino/listlens"
)

// bom is the UTF-8 byte order mark. Excel needs it to detect the encoding
// of Japanese text.
const bom = "\xEF\xBB\xBF"

// Ensure Writer implements listlens.RecordWriter at compile time.
var _ listlens.RecordWriter = (*Writer)(nil)

// Writer exports records to a CSV file under Dir. The header row is the
// sorted union of every record's field names; fields a record lacks render
// as empty cells.
type Writer struct {
	// Dir is the output directory, created on demand.
	Dir string

	// Filename names the output file inside Dir.
	Filename string
}

// NewWriter creates a Writer targeting dir/filename.
func NewWriter(dir, filename string) *Writer {
	return &Writer{Dir: dir, Filename: filename}
}

// WriteRecords writes the records and returns the absolute output path.
// An empty record set is an error: an empty file would hide a failed run
// from whoever opens the export.
func (w *Writer) WriteRecords(ctx context.Context, records []listlens.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", listlens.Errorf(listlens.EINVALID, "no records to write")
	}

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", listlens.Errorf(listlens.EINTERNAL, "creating output directory: %v", err)
	}

	path, err := filepath.Abs(filepath.Join(w.Dir, w.Filename))
	if err != nil {
		return "", listlens.Errorf(listlens.EINTERNAL, "resolving output path: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", listlens.Errorf(listlens.EINTERNAL, "creating output file: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(bom); err != nil {
		return "", listlens.Errorf(listlens.EINTERNAL, "writing BOM: %v", err)
	}

	header := Header(records)

	cw := stdcsv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", listlens.Errorf(listlens.EINTERNAL, "writing header: %v", err)
	}
	row := make([]string, len(header))
	for _, rec := range records {
		for i, field := range header {
			row[i] = rec[field]
		}
		if err := cw.Write(row); err != nil {
			return "", listlens.Errorf(listlens.EINTERNAL, "writing record: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", listlens.Errorf(listlens.EINTERNAL, "flushing output: %v", err)
	}
	if err := f.Close(); err != nil {
		return "", listlens.Errorf(listlens.EINTERNAL, "closing output: %v", err)
	}

	return path, nil
}

// Header returns the sorted union of field names across the records.
func Header(records []listlens.Record) []string {
	set := make(map[string]bool)
	for _, rec := range records {
		for field := range rec {
			set[field] = true
		}
	}
	header := make([]string, 0, len(set))
	for field := range set {
		header = append(header, field)
	}
	sort.Strings(header)
	return header
}
