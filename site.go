package listlens

import (
	"net/url"
	"regexp"
	"strings"
)

// TextFallback is a secondary extraction strategy applied when a field's
// primary cascade misses.
type TextFallback struct {
	// Pattern is searched over the page's full visible text. The first
	// capture group is used when present, the whole match otherwise.
	Pattern *regexp.Regexp

	// Label, when set, locates the element containing this label text, reads
	// its parent's text, and keeps what follows the label.
	Label string
}

// FieldSpec describes how one schema field is extracted from a detail page.
type FieldSpec struct {
	Name string

	// Cascade locates the field's element. When Attr is set on the cascade
	// the value is read from that attribute instead of the element text.
	Cascade Cascade

	// Validate, when set, is matched against a candidate value. A
	// non-matching candidate counts as a miss and the cascade continues.
	// The first capture group, when present, replaces the raw value.
	Validate *regexp.Regexp

	// Reject lists substrings that disqualify a candidate value (boilerplate
	// such as cookie-notice text bleeding into a selector match).
	Reject []string

	// MaxLen truncates the extracted value. Zero means no limit.
	MaxLen int

	// Fallbacks are tried in order when the cascade yields nothing.
	Fallbacks []TextFallback
}

// PostProcessor derives an auxiliary field by regex-scanning an
// already-extracted field. It only fills fields still empty after the
// primary pass; first pattern match wins.
type PostProcessor struct {
	Target   string
	Source   string
	Patterns []*regexp.Regexp
}

// PathRewrite translates an alternate path shape into the canonical one.
type PathRewrite struct {
	From string
	To   string
}

// CanonicalRule normalizes raw hrefs into the single canonical absolute-URL
// form used for deduplication and as the record key.
type CanonicalRule struct {
	// Scheme and Host anchor relative paths.
	Scheme string
	Host   string

	// HostAliases are equivalent hosts unified to Host.
	HostAliases []string

	// PathRewrites translate known alternate path shapes (e.g. a short
	// single-item form) into the canonical detail-page shape.
	PathRewrites []PathRewrite
}

// Site is the per-site configuration consumed by the generic scrape
// pipeline: selector cascades, identifier patterns, canonicalization rules,
// and the field schema. Site differences are data, not code.
type Site struct {
	Name string

	// SearchURL is the listing-page URL template with a %s keyword slot.
	SearchURL string

	// Schema is the fixed field set of this site's records.
	Schema Schema

	// LinkCascades locate detail-page links on a listing page, tried in
	// order until one yields an accepted link.
	LinkCascades []Cascade

	// IDPatterns accept only links whose URL shape encodes a valid item
	// identifier.
	IDPatterns []*regexp.Regexp

	// Exclude disqualifies links by raw attribute substring. Shared by the
	// link cascades and the broad fallback pass.
	Exclude ExclusionSet

	// FallbackKeywords mark anchor-like candidates during the broad
	// secondary pass when every cascade misses.
	FallbackKeywords []string

	Canonical CanonicalRule

	// Fields are extracted in order; order is fixed per site.
	Fields []FieldSpec

	PostProcessors []PostProcessor

	// Consent locates cookie/consent dismiss buttons. Best effort: a miss
	// means no overlay existed.
	Consent Cascade

	// Popups locates interstitial close buttons (translation banners and
	// the like), dismissed before consent handling.
	Popups Cascade

	// Page configures the browser context for this site.
	Page PageOptions
}

// SearchFor returns the listing-page URL for a keyword.
func (s *Site) SearchFor(keyword string) string {
	return strings.Replace(s.SearchURL, "%s", url.QueryEscape(keyword), 1)
}

// Validate returns an error if the site configuration is unusable.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.SearchURL == "" {
		return Errorf(EINVALID, "site search URL required")
	}
	if len(s.Schema) == 0 {
		return Errorf(EINVALID, "site schema required")
	}
	if len(s.LinkCascades) == 0 {
		return Errorf(EINVALID, "site link cascades required")
	}
	if s.Canonical.Host == "" {
		return Errorf(EINVALID, "site canonical host required")
	}
	return nil
}
