package sites_test

import (
	"testing"

	"github.com/ktsujino/listlens"
	"github.com/ktsujino/listlens/sites"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	t.Parallel()

	t.Run("finds every registered site", func(t *testing.T) {
		t.Parallel()

		for _, name := range sites.Names() {
			site, err := sites.ByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, site.Name)
		}
	})

	t.Run("unknown site", func(t *testing.T) {
		t.Parallel()

		_, err := sites.ByName("geocities")
		assert.Equal(t, listlens.ENOTFOUND, listlens.ErrorCode(err))
	})
}

func TestAll_Valid(t *testing.T) {
	t.Parallel()

	for _, site := range sites.All() {
		t.Run(site.Name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, site.Validate())
		})
	}
}

func TestMercari(t *testing.T) {
	t.Parallel()

	site := sites.Mercari()

	t.Run("search URL embeds the keyword", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"https://www.mercari.com/jp/search/?keyword=%E3%83%9D%E3%82%B1%E3%83%A2%E3%83%B3",
			site.SearchFor("ポケモン"),
		)
	})

	t.Run("id patterns accept item links only", func(t *testing.T) {
		t.Parallel()

		matches := func(s string) bool {
			for _, re := range site.IDPatterns {
				if re.MatchString(s) {
					return true
				}
			}
			return false
		}

		assert.True(t, matches("/jp/items/m12345"))
		assert.True(t, matches("/item/m12345"))
		assert.False(t, matches("/help/how-to-buy"))
		assert.False(t, matches("/search?keyword=x"))
	})

	t.Run("canonicalizes short item paths", func(t *testing.T) {
		t.Parallel()

		canon, err := listlens.Canonicalize("https://www.mercari.com/item/m123?ref=list", site.Canonical)
		require.NoError(t, err)
		assert.Equal(t, "https://jp.mercari.com/jp/items/m123", canon)
	})

	t.Run("rarity post-processor reads the description", func(t *testing.T) {
		t.Parallel()

		var pp *listlens.PostProcessor
		for i := range site.PostProcessors {
			if site.PostProcessors[i].Target == "rarity" {
				pp = &site.PostProcessors[i]
				break
			}
		}
		require.NotNil(t, pp)

		found := ""
		for _, re := range pp.Patterns {
			if m := re.FindStringSubmatch("リザードン sar 美品です"); m != nil {
				found = m[1]
				break
			}
		}
		assert.NotEmpty(t, found)
	})
}

func TestCrowdWorks(t *testing.T) {
	t.Parallel()

	site := sites.CrowdWorks()

	t.Run("search URL keeps the bracketed query parameter", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"https://crowdworks.jp/public/jobs/search?search%5Bkeywords%5D=scraping",
			site.SearchFor("scraping"),
		)
	})

	t.Run("id pattern accepts job links only", func(t *testing.T) {
		t.Parallel()

		re := site.IDPatterns[0]
		assert.True(t, re.MatchString("/public/jobs/1234567"))
		assert.False(t, re.MatchString("/public/jobs/search"))
		assert.False(t, re.MatchString("/category/jobs"))
	})
}
