package listlens_test

import (
	"testing"

	"github.com/ktsujino/listlens"
	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	t.Run("strips thousands separators", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1234.0, listlens.ParsePrice("1,234円"))
		assert.Equal(t, 1234.0, listlens.ParsePrice("¥1,234"))
	})

	t.Run("multiplies by ten thousand on 万 marker", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 10000.0, listlens.ParsePrice("1万円"))
		assert.Equal(t, 50000.0, listlens.ParsePrice("5万円"))
	})

	t.Run("uses first digit run only", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1980.0, listlens.ParsePrice("¥1,980 (税込 ¥2,178)"))
	})

	t.Run("unparsable text yields the unknown sentinel, not zero", func(t *testing.T) {
		t.Parallel()
		assert.False(t, listlens.KnownPrice(listlens.ParsePrice("")))
		assert.False(t, listlens.KnownPrice(listlens.ParsePrice("abc")))
		assert.False(t, listlens.KnownPrice(listlens.ParsePrice("価格未定")))
		assert.NotEqual(t, 0.0, listlens.ParsePrice("abc"))
	})

	t.Run("zero is a known price distinct from unknown", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, listlens.ParsePrice("0円"))
		assert.True(t, listlens.KnownPrice(listlens.ParsePrice("0円")))
	})
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	t.Run("extracts first digit run", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 12, listlens.ParseCount("応募した人 12 人"))
		assert.Equal(t, 3, listlens.ParseCount("3人が応募"))
	})

	t.Run("no digits counts as zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, listlens.ParseCount(""))
		assert.Equal(t, 0, listlens.ParseCount("なし"))
	})
}
