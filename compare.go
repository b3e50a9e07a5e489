package listlens

import (
	"fmt"
	"sort"
	"strings"
)

// Enrichment fields added to record copies by cross-source comparison.
const (
	FieldMatchedPrice    = "matched_price"
	FieldMatchedURL      = "matched_url"
	FieldPriceDifference = "price_difference"
)

// Comparison pairs a source record with its matched counterpart from a
// second source. Difference is the counterpart price minus the source price,
// so a positive difference means the source item is cheaper.
type Comparison struct {
	Record     Record
	Match      Record
	Difference float64
}

// MatchRecords pairs records across two sources by shared title keywords.
//
// Two titles match when, lowercased and split on whitespace, they share at
// least two keywords; among matching counterparts the one with the smallest
// positive price difference wins. This is a deliberately preserved
// known-weak heuristic: it produces false matches on generic keywords, but
// the original workflow documents no stronger intent.
//
// Records whose price text does not parse are excluded from matching on
// either side; the unknown sentinel never ranks as cheap.
func MatchRecords(records, others []Record) []Comparison {
	var out []Comparison
	for _, rec := range records {
		price := ParsePrice(rec["price"])
		if !KnownPrice(price) {
			continue
		}
		keywords := titleKeywords(rec["title"])

		var best Record
		bestDiff := PriceUnknown
		for _, other := range others {
			otherPrice := ParsePrice(other["price"])
			if !KnownPrice(otherPrice) {
				continue
			}
			if shared(keywords, titleKeywords(other["title"])) < 2 {
				continue
			}
			diff := otherPrice - price
			if diff > 0 && diff < bestDiff {
				best = other
				bestDiff = diff
			}
		}

		if best != nil {
			out = append(out, Comparison{Record: rec, Match: best, Difference: bestDiff})
		}
	}
	return out
}

// Cheaper returns enriched copies of the source records that are cheaper
// than their matched counterparts, sorted by price difference descending and
// capped at max. Source records are never mutated: enrichment fields are
// added to clones.
func Cheaper(comps []Comparison, max int) []Record {
	sorted := make([]Comparison, len(comps))
	copy(sorted, comps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Difference > sorted[j].Difference
	})

	if max > 0 && len(sorted) > max {
		sorted = sorted[:max]
	}

	out := make([]Record, 0, len(sorted))
	for _, c := range sorted {
		r := c.Record.Clone()
		r[FieldMatchedPrice] = c.Match["price"]
		r[FieldMatchedURL] = c.Match[FieldURL]
		r[FieldPriceDifference] = fmt.Sprintf("¥%d", int(c.Difference))
		out = append(out, r)
	}
	return out
}

func titleKeywords(title string) map[string]bool {
	words := strings.Fields(strings.ToLower(title))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func shared(a, b map[string]bool) int {
	n := 0
	for w := range a {
		if b[w] {
			n++
		}
	}
	return n
}
