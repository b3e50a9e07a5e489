package scrape

import (
	"regexp"

	"github.com/ktsujino/listlens"
	lensquery "github.com/ktsujino/listlens/goquery"
)

// ExtractLinks collects canonical detail-page links from a listing page.
//
// Cascades are tried in order and the first one yielding any accepted link
// wins — the same first-success rule as Resolve, composed at cascade
// granularity: a whole cascade either finds the site's link pattern or it
// doesn't. Accepted links are canonicalized and deduplicated by exact string
// equality, first occurrence wins, insertion order preserved.
//
// When every cascade misses, a broad secondary pass enumerates all
// anchor-like elements in the page HTML, keeps those whose raw href contains
// a site keyword, unwraps one level of redirect-wrapper URLs, and re-applies
// the same exclusion, id-pattern, canonicalization, and dedup steps.
func ExtractLinks(page listlens.Page, site *listlens.Site) []string {
	// Nudge lazy-loaded listings into the DOM. Best effort.
	_ = page.Eval("window.scrollTo(0, document.body.scrollHeight)")
	_ = page.Eval("window.scrollTo(0, 0)")

	seen := make(map[string]bool)
	var links []string

	accept := func(raw string) {
		if raw == "" || !matchesAny(raw, site.IDPatterns) {
			return
		}
		canon, err := listlens.Canonicalize(raw, site.Canonical)
		if err != nil {
			return
		}
		if seen[canon] {
			return
		}
		seen[canon] = true
		links = append(links, canon)
	}

	for _, cascade := range site.LinkCascades {
		attr := cascade.Attr
		if attr == "" {
			attr = "href"
		}
		for _, el := range Resolve(page, cascade) {
			raw, err := el.Attr(attr)
			if err != nil {
				continue
			}
			accept(raw)
		}
		if len(links) > 0 {
			return links
		}
	}

	// Broad fallback pass over the raw document.
	html, err := page.HTML()
	if err != nil {
		return links
	}
	for _, raw := range lensquery.Anchors(html, site.FallbackKeywords) {
		if site.Exclude.Excluded(raw) {
			continue
		}
		accept(raw)
	}

	return links
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
