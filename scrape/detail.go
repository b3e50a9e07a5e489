package scrape

import (
	"strings"

	"github.com/ktsujino/listlens"
)

// ExtractDetail pulls the site's field schema from a detail page the
// session manager has already brought to the ready state. Every schema
// field is populated; fields no strategy could extract hold the empty
// string. ExtractDetail itself never fails — absence is represented in the
// record, and the caller applies the plausibility gate.
//
// Fields are extracted in the site's fixed order. For each field the
// primary cascade is tried first; on a miss, the field's fallbacks run in
// order over the page's visible text. A field's value, once non-empty from
// any strategy, is never overwritten. After the per-field pass, cross-field
// post-processors fill still-empty fields from already-extracted text under
// the same first-non-empty-wins rule.
func ExtractDetail(page listlens.Page, url string, site *listlens.Site) listlens.Record {
	rec := listlens.NewRecord(site.Schema, url)

	// Body text is read once and shared by every text fallback.
	bodyText, _ := page.Text()

	for _, field := range site.Fields {
		if v := fieldValue(page, field); v != "" {
			rec.SetIfEmpty(field.Name, v)
			continue
		}
		for _, fb := range field.Fallbacks {
			v := fallbackValue(page, bodyText, field, fb)
			if v != "" {
				rec.SetIfEmpty(field.Name, truncate(v, field.MaxLen))
				break
			}
		}
	}

	for _, pp := range site.PostProcessors {
		if rec[pp.Target] != "" {
			continue
		}
		source := rec[pp.Source]
		if source == "" {
			continue
		}
		for _, re := range pp.Patterns {
			if m := re.FindStringSubmatch(source); m != nil {
				rec.SetIfEmpty(pp.Target, pickGroup(m))
				break
			}
		}
	}

	return rec
}

// fieldValue runs the field's primary cascade. A candidate whose first
// match produces an invalid value (fails Validate, or contains a Reject
// substring) counts as a miss and the cascade continues.
func fieldValue(page listlens.Page, field listlens.FieldSpec) string {
	attr := field.Cascade.Attr
	for _, cand := range field.Cascade.Candidates {
		els, err := page.Elements(cand)
		if err != nil || len(els) == 0 {
			continue
		}

		var raw string
		if attr != "" {
			raw, err = els[0].Attr(attr)
		} else {
			raw, err = els[0].Text()
		}
		if err != nil {
			continue
		}

		v := strings.TrimSpace(raw)
		if v == "" || rejected(v, field.Reject) {
			continue
		}
		if field.Validate != nil {
			m := field.Validate.FindStringSubmatch(v)
			if m == nil {
				continue
			}
			v = pickGroup(m)
		}
		return truncate(v, field.MaxLen)
	}
	return ""
}

// fallbackValue applies one secondary strategy: a regex over the page's
// visible text, or the label heuristic — find the element containing the
// label, read its parent's text, and keep what follows the label.
func fallbackValue(page listlens.Page, bodyText string, field listlens.FieldSpec, fb listlens.TextFallback) string {
	if fb.Pattern != nil {
		if m := fb.Pattern.FindStringSubmatch(bodyText); m != nil {
			return strings.TrimSpace(pickGroup(m))
		}
		return ""
	}

	if fb.Label == "" {
		return ""
	}

	els, err := page.Elements(listlens.Text(fb.Label))
	if err != nil || len(els) == 0 {
		return ""
	}

	text := ""
	if parent, err := els[0].Parent(); err == nil {
		text, _ = parent.Text()
	}
	if text == "" {
		text, _ = els[0].Text()
	}

	_, after, found := strings.Cut(text, fb.Label)
	if !found {
		return ""
	}
	if line, _, ok := strings.Cut(after, "\n"); ok {
		after = line
	}
	v := strings.TrimSpace(after)
	if rejected(v, field.Reject) {
		return ""
	}
	return v
}

// pickGroup returns the first capture group when the pattern has one, the
// whole match otherwise.
func pickGroup(m []string) string {
	if len(m) > 1 && m[1] != "" {
		return m[1]
	}
	return m[0]
}

func rejected(v string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(v, p) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
