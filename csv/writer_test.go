package csv_test

import (
	"context"
	stdcsv "encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ktsujino/listlens"
	lenscsv "github.com/ktsujino/listlens/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteRecords(t *testing.T) {
	t.Parallel()

	t.Run("writes BOM, sorted union header, and empty cells", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := lenscsv.NewWriter(dir, "out.csv")

		records := []listlens.Record{
			{"url": "u1", "title": "first", "price": "1000円"},
			{"url": "u2", "title": "second", "condition": "新品"},
		}

		path, err := w.WriteRecords(context.Background(), records)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"))

		r := stdcsv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")))
		rows, err := r.ReadAll()
		require.NoError(t, err)

		require.Len(t, rows, 3)
		assert.Equal(t, []string{"condition", "price", "title", "url"}, rows[0])
		assert.Equal(t, []string{"", "1000円", "first", "u1"}, rows[1])
		assert.Equal(t, []string{"新品", "", "second", "u2"}, rows[2])
	})

	t.Run("creates the output directory on demand", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "output")
		w := lenscsv.NewWriter(dir, "out.csv")

		path, err := w.WriteRecords(context.Background(), []listlens.Record{{"url": "u"}})
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("refuses an empty record set", func(t *testing.T) {
		t.Parallel()

		w := lenscsv.NewWriter(t.TempDir(), "out.csv")

		_, err := w.WriteRecords(context.Background(), nil)
		assert.Equal(t, listlens.EINVALID, listlens.ErrorCode(err))
	})

	t.Run("respects a canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := lenscsv.NewWriter(t.TempDir(), "out.csv")
		_, err := w.WriteRecords(ctx, []listlens.Record{{"url": "u"}})
		assert.Error(t, err)
	})
}

func TestHeader(t *testing.T) {
	t.Parallel()

	header := lenscsv.Header([]listlens.Record{
		{"b": "", "a": ""},
		{"c": "", "a": ""},
	})
	assert.Equal(t, []string{"a", "b", "c"}, header)
}
