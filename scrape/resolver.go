// Package scrape provides the generic listing/detail extraction pipeline.
// It resolves selector cascades against live pages, drives the per-visit
// navigation state machine, and composes both into site-agnostic link and
// field extraction parameterized by listlens.Site configuration.
package scrape

import (
	"github.com/ktsujino/listlens"
)

// Resolve walks the cascade in order and returns the match set of the first
// candidate that yields at least one non-excluded element, in document
// order. Match sets are never merged across candidates.
//
// A candidate whose query fails (unsupported locator syntax, detached
// element) counts as zero matches and the cascade continues. For
// attribute-flavored cascades the exclusion set is applied before the
// success check, so a candidate yielding only excluded links is a miss.
//
// Resolve never fails; an empty result means "not found" and callers fall
// through to their secondary strategies.
func Resolve(page listlens.Page, c listlens.Cascade) []listlens.Element {
	for _, cand := range c.Candidates {
		els, err := page.Elements(cand)
		if err != nil || len(els) == 0 {
			continue
		}

		if c.Attr == "" || len(c.Exclude) == 0 {
			return els
		}

		kept := make([]listlens.Element, 0, len(els))
		for _, el := range els {
			raw, err := el.Attr(c.Attr)
			if err != nil {
				continue
			}
			if c.Exclude.Excluded(raw) {
				continue
			}
			kept = append(kept, el)
		}
		if len(kept) > 0 {
			return kept
		}
	}
	return nil
}
