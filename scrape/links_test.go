package scrape_test

import (
	"regexp"
	"testing"

	"github.com/ktsujino/listlens"
	"github.com/ktsujino/listlens/mock"
	"github.com/ktsujino/listlens/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingSite() *listlens.Site {
	return &listlens.Site{
		Name:       "test",
		SearchURL:  "https://example.com/search?q=%s",
		Schema:     listlens.Schema{"url", "title"},
		IDPatterns: []*regexp.Regexp{regexp.MustCompile(`/items/([a-z0-9]+)`)},
		Exclude:    listlens.ExclusionSet{"/login"},
		LinkCascades: []listlens.Cascade{{
			Candidates: []listlens.SelectorCandidate{listlens.CSS("a.item")},
			Attr:       "href",
			Exclude:    listlens.ExclusionSet{"/login"},
		}},
		FallbackKeywords: []string{"item"},
		Canonical: listlens.CanonicalRule{
			Scheme: "https",
			Host:   "example.com",
		},
	}
}

func anchorPage(hrefs ...string) *mock.Page {
	els := make([]listlens.Element, 0, len(hrefs))
	for _, h := range hrefs {
		els = append(els, elementWithAttr("href", h))
	}
	return &mock.Page{
		ElementsFn: func(sel listlens.SelectorCandidate) ([]listlens.Element, error) {
			return els, nil
		},
	}
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps id-matching anchors and drops the rest", func(t *testing.T) {
		t.Parallel()

		page := anchorPage(
			"/items/m1",
			"/login",
			"/about",
			"/items/m2",
			"/items/m3",
		)

		links := scrape.ExtractLinks(page, listingSite())

		assert.Equal(t, []string{
			"https://example.com/items/m1",
			"https://example.com/items/m2",
			"https://example.com/items/m3",
		}, links)
	})

	t.Run("deduplicates by canonical form, first occurrence wins", func(t *testing.T) {
		t.Parallel()

		page := anchorPage(
			"/items/m1",
			"/items/m1?ref=suggest",
			"/items/m2",
		)

		links := scrape.ExtractLinks(page, listingSite())

		assert.Equal(t, []string{
			"https://example.com/items/m1",
			"https://example.com/items/m2",
		}, links)
	})

	t.Run("falls back to raw HTML anchors when every cascade misses", func(t *testing.T) {
		t.Parallel()

		page := &mock.Page{
			ElementsFn: func(sel listlens.SelectorCandidate) ([]listlens.Element, error) {
				return nil, nil
			},
			HTMLFn: func() (string, error) {
				return `<html><body>
					<a href="/items/m9">an item</a>
					<a href="/login">log in</a>
					<a href="/unrelated">other</a>
				</body></html>`, nil
			},
		}

		links := scrape.ExtractLinks(page, listingSite())

		assert.Equal(t, []string{"https://example.com/items/m9"}, links)
	})

	t.Run("empty page yields an empty run, not an error", func(t *testing.T) {
		t.Parallel()

		page := &mock.Page{
			HTMLFn: func() (string, error) { return "<html></html>", nil },
		}

		links := scrape.ExtractLinks(page, listingSite())
		require.Empty(t, links)
	})
}
