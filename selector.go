package listlens

import "strings"

// LocatorKind identifies how a selector expression is interpreted.
type LocatorKind int

// Supported locator kinds.
const (
	LocatorCSS LocatorKind = iota
	LocatorXPath
	LocatorText
)

// String returns the kind's identifier.
func (k LocatorKind) String() string {
	switch k {
	case LocatorXPath:
		return "xpath"
	case LocatorText:
		return "text"
	default:
		return "css"
	}
}

// SelectorCandidate is one element-location strategy within a cascade.
type SelectorCandidate struct {
	Expr string
	Kind LocatorKind
}

// CSS returns a CSS selector candidate.
func CSS(expr string) SelectorCandidate {
	return SelectorCandidate{Expr: expr, Kind: LocatorCSS}
}

// XPath returns an XPath selector candidate.
func XPath(expr string) SelectorCandidate {
	return SelectorCandidate{Expr: expr, Kind: LocatorXPath}
}

// Text returns a text-match selector candidate, matching elements whose
// text content contains the given string.
func Text(s string) SelectorCandidate {
	return SelectorCandidate{Expr: s, Kind: LocatorText}
}

// ExclusionSet is a list of substring patterns that disqualify an otherwise
// matching URL or attribute value.
type ExclusionSet []string

// Excluded reports whether any exclusion pattern is a substring of raw.
func (s ExclusionSet) Excluded(raw string) bool {
	for _, p := range s {
		if strings.Contains(raw, p) {
			return true
		}
	}
	return false
}

// Cascade is an ordered sequence of selector candidates evaluated until one
// succeeds. Order is significant and deterministic: the first candidate that
// yields at least one non-excluded match wins, and later candidates are
// never consulted.
type Cascade struct {
	Candidates []SelectorCandidate

	// Attr, when non-empty, marks the cascade as attribute-flavored (link or
	// image extraction): matches are read through this attribute and the
	// exclusion set is applied to the raw attribute value.
	Attr string

	// Exclude disqualifies matches whose attribute value contains any of
	// these substrings. Only consulted when Attr is set.
	Exclude ExclusionSet
}

// Empty reports whether the cascade has no candidates.
func (c Cascade) Empty() bool {
	return len(c.Candidates) == 0
}
