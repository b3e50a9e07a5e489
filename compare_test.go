package listlens_test

import (
	"testing"

	"github.com/ktsujino/listlens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(url, title, price string) listlens.Record {
	return listlens.Record{"url": url, "title": title, "price": price}
}

func TestMatchRecords(t *testing.T) {
	t.Parallel()

	t.Run("requires two shared title keywords", func(t *testing.T) {
		t.Parallel()

		source := []listlens.Record{rec("s1", "ポケモンカード リザードン SR", "1000円")}
		others := []listlens.Record{
			// One shared keyword only: no match.
			rec("o1", "リザードン フィギュア", "2000円"),
			// Two shared keywords: matches.
			rec("o2", "ポケモンカード リザードン 美品", "1500円"),
		}

		comps := listlens.MatchRecords(source, others)

		require.Len(t, comps, 1)
		assert.Equal(t, "o2", comps[0].Match["url"])
		assert.Equal(t, 500.0, comps[0].Difference)
	})

	t.Run("prefers smallest positive difference", func(t *testing.T) {
		t.Parallel()

		source := []listlens.Record{rec("s1", "ポケモンカード リザードン", "1000円")}
		others := []listlens.Record{
			rec("o1", "ポケモンカード リザードン", "5000円"),
			rec("o2", "ポケモンカード リザードン", "1200円"),
			// Cheaper counterpart: negative difference, never matched.
			rec("o3", "ポケモンカード リザードン", "800円"),
		}

		comps := listlens.MatchRecords(source, others)

		require.Len(t, comps, 1)
		assert.Equal(t, "o2", comps[0].Match["url"])
		assert.Equal(t, 200.0, comps[0].Difference)
	})

	t.Run("unknown prices are excluded from matching", func(t *testing.T) {
		t.Parallel()

		source := []listlens.Record{
			rec("s1", "ポケモンカード リザードン", "価格未定"),
			rec("s2", "ポケモンカード リザードン", "1000円"),
		}
		others := []listlens.Record{
			rec("o1", "ポケモンカード リザードン", ""),
			rec("o2", "ポケモンカード リザードン", "1100円"),
		}

		comps := listlens.MatchRecords(source, others)

		require.Len(t, comps, 1)
		assert.Equal(t, "s2", comps[0].Record["url"])
		assert.Equal(t, "o2", comps[0].Match["url"])
	})
}

func TestCheaper(t *testing.T) {
	t.Parallel()

	t.Run("sorts by difference descending and enriches clones", func(t *testing.T) {
		t.Parallel()

		a := rec("a", "item one a", "100円")
		b := rec("b", "item two b", "100円")
		comps := []listlens.Comparison{
			{Record: a, Match: rec("ma", "item one a", "300円"), Difference: 200},
			{Record: b, Match: rec("mb", "item two b", "600円"), Difference: 500},
		}

		out := listlens.Cheaper(comps, 10)

		require.Len(t, out, 2)
		assert.Equal(t, "b", out[0]["url"])
		assert.Equal(t, "¥500", out[0][listlens.FieldPriceDifference])
		assert.Equal(t, "mb", out[0][listlens.FieldMatchedURL])
		assert.Equal(t, "600円", out[0][listlens.FieldMatchedPrice])

		// Source records stay unmutated.
		_, enriched := a[listlens.FieldPriceDifference]
		assert.False(t, enriched)
	})

	t.Run("caps the result at max", func(t *testing.T) {
		t.Parallel()

		var comps []listlens.Comparison
		for i := 0; i < 5; i++ {
			comps = append(comps, listlens.Comparison{
				Record:     rec("r", "t", "100円"),
				Match:      rec("m", "t", "200円"),
				Difference: float64(100 + i),
			})
		}

		out := listlens.Cheaper(comps, 3)
		assert.Len(t, out, 3)
	})
}
