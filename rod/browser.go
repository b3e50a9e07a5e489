// Package rod implements browser automation against Chrome using
// github.com/go-rod/rod. It is the only package that touches the DevTools
// protocol; everything above it speaks the listlens.Browser capability
// surface.
package rod

import (
	"context"

	"github.com/go-rod/rod/lib/proto"
	"github.com/ktsujino/listlens"
)

// Ensure Browser implements listlens.Browser at compile time.
var _ listlens.Browser = (*Browser)(nil)

// Browser opens isolated pages on a managed Chrome instance. Browser is
// safe for concurrent use, though the scrape pipeline drives it strictly
// sequentially.
type Browser struct {
	manager *BrowserManager
}

// NewBrowser launches Chrome. Close must be called when the Browser is no
// longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched; callers
// treat this as fatal to the run.
func NewBrowser(opts ...ManagerOption) (*Browser, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Browser{manager: manager}, nil
}

// NewPage opens a fresh page with the requested viewport, user agent,
// locale, and timezone. The caller owns the page and must close it on
// every exit path.
func (b *Browser) NewPage(ctx context.Context, opts listlens.PageOptions) (listlens.Page, error) {
	pg, err := b.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, listlens.Errorf(listlens.EINTERNAL, "opening page: %v", err)
	}
	pg = pg.Context(ctx)

	if opts.UserAgent != "" || opts.Locale != "" {
		override := &proto.NetworkSetUserAgentOverride{UserAgent: opts.UserAgent}
		if opts.Locale != "" {
			override.AcceptLanguage = opts.Locale
		}
		if err := pg.SetUserAgent(override); err != nil {
			_ = pg.Close()
			return nil, listlens.Errorf(listlens.EINTERNAL, "setting user agent: %v", err)
		}
	}

	if opts.ViewportWidth > 0 && opts.ViewportHeight > 0 {
		err := pg.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             opts.ViewportWidth,
			Height:            opts.ViewportHeight,
			DeviceScaleFactor: 1,
		})
		if err != nil {
			_ = pg.Close()
			return nil, listlens.Errorf(listlens.EINTERNAL, "setting viewport: %v", err)
		}
	}

	if opts.Timezone != "" {
		// Timezone emulation is best effort: some Chrome builds reject it.
		_ = proto.EmulationSetTimezoneOverride{TimezoneID: opts.Timezone}.Call(pg)
	}

	b.manager.IncrementPageCount()
	return &Page{page: pg}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	return b.manager.Close()
}
