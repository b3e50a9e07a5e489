package scrape

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ktsujino/listlens"
	"golang.org/x/time/rate"
)

// DefaultMaxItems bounds how many detail pages one run visits.
const DefaultMaxItems = 10

// DefaultRequestDelay is the fixed pause between page visits. Rate limiting
// is a politeness measure, not a scheduler: the pipeline is strictly
// sequential.
const DefaultRequestDelay = 2 * time.Second

// boilerplate substrings disqualify extracted titles: cookie and privacy
// notice text regularly bleeds into loose title selectors.
var boilerplate = []string{"cookie", "Cookie", "privacy", "Privacy", "同意", "ログイン", "会員登録"}

// PlausibleTitle reports whether an extracted title looks like real item
// text: longer than five characters and free of consent-notice boilerplate.
// Every site caller applies the same gate, so it lives here once.
func PlausibleTitle(title string) bool {
	if len([]rune(title)) <= 5 {
		return false
	}
	lowered := strings.ToLower(title)
	for _, b := range boilerplate {
		if strings.Contains(lowered, strings.ToLower(b)) {
			return false
		}
	}
	return true
}

// Scraper runs the listing → detail pipeline for one site. One page visit
// is in flight at a time, each in its own browser context, and every
// context is torn down before the next URL is considered.
type Scraper struct {
	Browser listlens.Browser
	Site    *listlens.Site

	// Visitor drives navigation. When nil a Visitor with the site's consent
	// and popup cascades is used.
	Visitor *Visitor

	// Limiter paces page visits. When nil, one visit per
	// DefaultRequestDelay.
	Limiter *rate.Limiter

	// MaxItems caps detail-page visits per run. Defaults to
	// DefaultMaxItems.
	MaxItems int

	Logger *slog.Logger
}

// Run scrapes the site for a keyword: one listing-page visit to discover
// links, then one detail-page visit per link in discovery order. Records
// accumulate in that same order.
//
// A run that finds zero links or zero usable records is a valid, logged
// outcome, not an error. Only resource-level failures (a page cannot be
// opened at all) propagate.
func (s *Scraper) Run(ctx context.Context, keyword string) (*listlens.Run, error) {
	run := &listlens.Run{
		Site:      s.Site.Name,
		Keyword:   keyword,
		StartedAt: time.Now().UTC(),
	}

	searchURL := s.Site.SearchFor(keyword)
	links, err := s.ScrapeLinks(ctx, searchURL)
	if err != nil {
		// A failed listing visit means no data, not a crash.
		s.logger().Warn("listing page failed",
			"site", s.Site.Name,
			"url", searchURL,
			"reason", listlens.ErrorMessage(err),
		)
		if listlens.ErrorCode(err) == listlens.EINTERNAL {
			return nil, err
		}
		return run, nil
	}

	s.logger().Info("listing links discovered",
		"site", s.Site.Name,
		"keyword", keyword,
		"count", len(links),
	)

	max := s.MaxItems
	if max <= 0 {
		max = DefaultMaxItems
	}

	for _, link := range links {
		if len(run.Records) >= max {
			break
		}
		if err := s.wait(ctx); err != nil {
			return run, err
		}

		rec, err := s.ScrapeDetail(ctx, link)
		if err != nil {
			if listlens.ErrorCode(err) == listlens.EINTERNAL {
				return run, err
			}
			// Verification, not-found, and navigation failures are uniform
			// "no record" outcomes; only the log line tells them apart.
			s.logger().Warn("detail page skipped",
				"site", s.Site.Name,
				"url", link,
				"reason", listlens.ErrorMessage(err),
			)
			continue
		}

		if !PlausibleTitle(rec["title"]) {
			s.logger().Debug("record rejected by title gate", "url", link, "title", rec["title"])
			continue
		}

		run.Records = append(run.Records, rec)
		s.logger().Info("record extracted",
			"site", s.Site.Name,
			"url", link,
			"title", rec["title"],
			"progress", len(run.Records),
		)
	}

	if len(run.Records) == 0 {
		s.logger().Info("run produced no records", "site", s.Site.Name, "keyword", keyword)
	}

	return run, nil
}

// ScrapeLinks visits one listing page and extracts canonical detail links.
func (s *Scraper) ScrapeLinks(ctx context.Context, url string) ([]string, error) {
	page, err := s.Browser.NewPage(ctx, s.Site.Page)
	if err != nil {
		return nil, listlens.Errorf(listlens.EINTERNAL, "opening page: %v", err)
	}
	defer page.Close()

	if err := s.visitor().Visit(ctx, page, url); err != nil {
		return nil, err
	}

	return ExtractLinks(page, s.Site), nil
}

// ScrapeDetail visits one detail page and extracts a record. Verification,
// not-found, and navigation failures return an error the caller logs; the
// record is absent in all three cases.
func (s *Scraper) ScrapeDetail(ctx context.Context, url string) (listlens.Record, error) {
	page, err := s.Browser.NewPage(ctx, s.Site.Page)
	if err != nil {
		return nil, listlens.Errorf(listlens.EINTERNAL, "opening page: %v", err)
	}
	defer page.Close()

	if err := s.visitor().Visit(ctx, page, url); err != nil {
		return nil, err
	}

	return ExtractDetail(page, url, s.Site), nil
}

func (s *Scraper) visitor() *Visitor {
	if s.Visitor != nil {
		return s.Visitor
	}
	s.Visitor = &Visitor{
		Popups:  s.Site.Popups,
		Consent: s.Site.Consent,
		Logger:  s.Logger,
	}
	return s.Visitor
}

func (s *Scraper) wait(ctx context.Context) error {
	if s.Limiter == nil {
		s.Limiter = rate.NewLimiter(rate.Every(DefaultRequestDelay), 1)
	}
	return s.Limiter.Wait(ctx)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
