package listlens

import (
	"net/url"
	"strings"
)

// Canonicalize normalizes a raw href into the canonical absolute detail-page
// URL: relative paths gain the canonical scheme and host, query strings and
// fragments are stripped, alias hosts are unified, and known alternate path
// shapes are rewritten to the canonical one.
//
// Canonicalize is idempotent: applying it to an already-canonical URL
// returns the URL unchanged.
func Canonicalize(raw string, rule CanonicalRule) (string, error) {
	if raw == "" {
		return "", Errorf(EINVALID, "empty URL")
	}

	scheme := rule.Scheme
	if scheme == "" {
		scheme = "https"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "unparsable URL %q: %v", raw, err)
	}
	switch u.Scheme {
	case "http", "https":
	case "":
		// Relative or protocol-relative: anchor to the canonical origin.
		u.Scheme = scheme
		if u.Host == "" {
			u.Host = rule.Host
		}
		if !strings.HasPrefix(u.Path, "/") {
			u.Path = "/" + u.Path
		}
	default:
		return "", Errorf(EINVALID, "unsupported scheme %q", u.Scheme)
	}

	host := u.Host
	for _, alias := range rule.HostAliases {
		if host == alias {
			host = rule.Host
			break
		}
	}

	path := u.Path
	for _, rw := range rule.PathRewrites {
		if strings.HasPrefix(path, rw.From) && !strings.HasPrefix(path, rw.To) {
			path = rw.To + strings.TrimPrefix(path, rw.From)
			break
		}
	}

	canon := url.URL{Scheme: u.Scheme, Host: host, Path: path}
	return canon.String(), nil
}
