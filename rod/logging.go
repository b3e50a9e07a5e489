package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/ktsujino/listlens"
)

// Ensure LoggingBrowser implements listlens.Browser.
var _ listlens.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging. Pages it opens log
// their navigations through the same logger.
type LoggingBrowser struct {
	next   listlens.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next listlens.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// NewPage logs the page open and delegates to the wrapped browser.
func (b *LoggingBrowser) NewPage(ctx context.Context, opts listlens.PageOptions) (listlens.Page, error) {
	page, err := b.next.NewPage(ctx, opts)
	if err != nil {
		b.logger.Info("page open", "err", err)
		return nil, err
	}
	b.logger.Debug("page open")
	return &loggingPage{next: page, logger: b.logger}, nil
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}

// loggingPage logs navigations and teardown; element queries pass through
// untouched since cascades generate too many to log usefully.
type loggingPage struct {
	next   listlens.Page
	logger *slog.Logger
}

func (p *loggingPage) Navigate(ctx context.Context, url string, wait listlens.WaitCondition, timeout time.Duration) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("navigate",
			"url", url,
			"wait", wait.String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Navigate(ctx, url, wait, timeout)
}

func (p *loggingPage) URL() string                   { return p.next.URL() }
func (p *loggingPage) Title() (string, error)        { return p.next.Title() }
func (p *loggingPage) Text() (string, error)         { return p.next.Text() }
func (p *loggingPage) HTML() (string, error)         { return p.next.HTML() }
func (p *loggingPage) Eval(js string) error          { return p.next.Eval(js) }
func (p *loggingPage) Screenshot(fullPage bool) ([]byte, error) {
	return p.next.Screenshot(fullPage)
}

func (p *loggingPage) Elements(sel listlens.SelectorCandidate) ([]listlens.Element, error) {
	return p.next.Elements(sel)
}

func (p *loggingPage) Close() error {
	err := p.next.Close()
	p.logger.Debug("page close", "err", err)
	return err
}
