package listlens

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PriceUnknown is the sentinel for unparsable price text. It is positive
// infinity rather than zero so that sorting by price pushes unknown values
// last and comparison logic never mistakes "unknown" for "free".
var PriceUnknown = math.Inf(1)

var digitRunRe = regexp.MustCompile(`[0-9]+`)

// ParsePrice extracts a numeric amount from locale-formatted price text such
// as "¥1,234", "1,234円", or "1万円". Thousands separators are stripped and
// the first run of digits is used; a 万 (ten-thousand) unit marker multiplies
// the value by 10,000. No currency conversion is performed.
//
// Text with no digits parses to PriceUnknown. ParsePrice never fails.
func ParsePrice(text string) float64 {
	if text == "" {
		return PriceUnknown
	}
	m := digitRunRe.FindString(strings.ReplaceAll(text, ",", ""))
	if m == "" {
		return PriceUnknown
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return PriceUnknown
	}
	if strings.Contains(text, "万") {
		v *= 10000
	}
	return v
}

// KnownPrice reports whether v is a real parsed amount rather than the
// unknown sentinel.
func KnownPrice(v float64) bool {
	return !math.IsInf(v, 1)
}

// ParseCount extracts the first run of digits from text such as "応募した人
// 12 人" and returns it as an integer. Text with no digits counts as zero.
func ParseCount(text string) int {
	m := digitRunRe.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
