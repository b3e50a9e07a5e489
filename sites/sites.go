// Package sites holds the per-site scrape configuration: selector cascades,
// identifier patterns, canonicalization rules, and field schemas. Each site
// is data consumed by the generic pipeline; no extraction logic lives here.
package sites

import (
	"github.com/ktsujino/listlens"
)

// All returns every configured site, in registration order.
func All() []*listlens.Site {
	return []*listlens.Site{
		Mercari(),
		Amazon(),
		CrowdWorks(),
	}
}

// ByName returns the site registered under the given name.
func ByName(name string) (*listlens.Site, error) {
	for _, site := range All() {
		if site.Name == name {
			return site, nil
		}
	}
	return nil, listlens.Errorf(listlens.ENOTFOUND, "unknown site %q", name)
}

// Names returns the names of every configured site.
func Names() []string {
	sites := All()
	names := make([]string, len(sites))
	for i, site := range sites {
		names[i] = site.Name
	}
	return names
}
