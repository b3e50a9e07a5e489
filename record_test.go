package listlens_test

import (
	"testing"

	"github.com/ktsujino/listlens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	t.Run("populates every schema field with empty string", func(t *testing.T) {
		t.Parallel()

		schema := listlens.Schema{"url", "title", "price"}
		rec := listlens.NewRecord(schema, "https://example.com/items/1")

		require.Len(t, rec, 3)
		assert.Equal(t, "https://example.com/items/1", rec["url"])
		assert.Equal(t, "", rec["title"])
		assert.Equal(t, "", rec["price"])
	})
}

func TestRecord_SetIfEmpty(t *testing.T) {
	t.Parallel()

	t.Run("first non-empty value wins", func(t *testing.T) {
		t.Parallel()

		rec := listlens.NewRecord(listlens.Schema{"url", "title"}, "u")

		assert.True(t, rec.SetIfEmpty("title", "primary"))
		assert.False(t, rec.SetIfEmpty("title", "fallback"))
		assert.Equal(t, "primary", rec["title"])
	})

	t.Run("empty values never set", func(t *testing.T) {
		t.Parallel()

		rec := listlens.NewRecord(listlens.Schema{"url", "title"}, "u")

		assert.False(t, rec.SetIfEmpty("title", ""))
		assert.Equal(t, "", rec["title"])
	})
}

func TestRecord_Clone(t *testing.T) {
	t.Parallel()

	rec := listlens.NewRecord(listlens.Schema{"url", "title"}, "u")
	rec["title"] = "original"

	clone := rec.Clone()
	clone["title"] = "changed"

	assert.Equal(t, "original", rec["title"])
	assert.Equal(t, "changed", clone["title"])
}
