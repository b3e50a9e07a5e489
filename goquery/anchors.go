// Package goquery implements HTML parsing against static markup using
// github.com/PuerkitoBio/goquery. It backs the broad secondary link pass the
// live-page cascades fall through to.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// redirectParams are query parameter names known to wrap a real destination
// URL inside a tracking redirect.
var redirectParams = []string{"rurl", "url", "redirect"}

// Anchors returns the href of every anchor in the HTML whose raw href
// contains any of the keywords, case-insensitively, in document order.
// Redirect-wrapper hrefs that embed the real destination as a query
// parameter are unwrapped one level before the keyword check.
//
// Unparsable HTML yields an empty result: this is a fallback pass, absence
// is the contract.
func Anchors(html string, keywords []string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		href = unwrapRedirect(href)

		lowered := strings.ToLower(href)
		for _, kw := range keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				hrefs = append(hrefs, href)
				return
			}
		}
	})

	return hrefs
}

// unwrapRedirect extracts the destination from a redirect-wrapper URL. One
// level only: a wrapper inside a wrapper stays wrapped.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	q := u.Query()
	for _, param := range redirectParams {
		dest := q.Get(param)
		if dest == "" {
			continue
		}
		if unescaped, err := url.QueryUnescape(dest); err == nil {
			dest = unescaped
		}
		if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") || strings.HasPrefix(dest, "/") {
			return dest
		}
	}
	return href
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
