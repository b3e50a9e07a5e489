package scrape

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ktsujino/listlens"
)

// Default navigation policy. The first attempt gets the full budget; each
// escalation halves it.
const (
	DefaultNavTimeout  = 60 * time.Second
	DefaultSettleDelay = 3 * time.Second
)

// visitState tracks the per-visit state machine for logging.
type visitState int

const (
	stateIdle visitState = iota
	stateNavigating
	stateLoaded
	stateConsentHandled
	stateVerified
	stateReady
	stateFailed
)

func (s visitState) String() string {
	switch s {
	case stateNavigating:
		return "navigating"
	case stateLoaded:
		return "loaded"
	case stateConsentHandled:
		return "consent-handled"
	case stateVerified:
		return "verified"
	case stateReady:
		return "ready"
	case stateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// waitEscalation is the fixed retry ladder: strictest condition first, then
// progressively looser conditions when navigation errors or times out.
var waitEscalation = []listlens.WaitCondition{
	listlens.WaitDOMReady,
	listlens.WaitFirstPaint,
	listlens.WaitCommit,
}

// DefaultVerificationPhrases mark bot-verification interstitials. Matching
// is a case-insensitive substring check against page text and title. The
// page is skipped, never solved.
var DefaultVerificationPhrases = []string{
	"あなたが人間であることを確認してください",
	"i'm not a robot",
	"recaptcha",
	"captcha",
	"verify you are human",
}

// DefaultNotFoundPhrases mark dead listings.
var DefaultNotFoundPhrases = []string{
	"404",
	"sorry this page couldn't be found",
	"ページが見つかりません",
	"couldn't be found",
}

// Visitor drives one page visit through the navigation state machine:
// navigate with wait-condition escalation, dismiss popups and consent
// overlays best-effort, then check for verification and not-found
// interstitials.
type Visitor struct {
	// NavTimeout is the first navigation attempt's budget. Defaults to
	// DefaultNavTimeout.
	NavTimeout time.Duration

	// SettleDelay is slept after a successful navigation to let async
	// content render. Defaults to DefaultSettleDelay.
	SettleDelay time.Duration

	// Popups and Consent locate interstitial close buttons and
	// cookie-consent accept buttons. A miss on every candidate is not an
	// error: no overlay existed.
	Popups  listlens.Cascade
	Consent listlens.Cascade

	// Verification and NotFound override the default phrase sets when
	// non-nil.
	Verification []string
	NotFound     []string

	Logger *slog.Logger
}

// Visit navigates the page to the URL and returns nil once the page is
// ready for extraction. Failures are returned as coded errors:
// EUNAVAILABLE "verification-required" or navigation exhaustion, ENOTFOUND
// "not-found". The caller owns the page and must close it regardless.
func (v *Visitor) Visit(ctx context.Context, page listlens.Page, url string) error {
	logger := v.logger()
	st := stateIdle

	transition := func(next visitState) {
		st = next
		logger.Debug("visit", "url", url, "state", st.String())
	}

	transition(stateNavigating)
	if err := v.navigate(ctx, page, url); err != nil {
		transition(stateFailed)
		return err
	}
	transition(stateLoaded)

	if err := v.sleep(ctx, v.settleDelay()); err != nil {
		transition(stateFailed)
		return err
	}

	// Overlays first: consent banners can cover the content selectors.
	v.dismiss(page, v.Popups)
	if v.dismiss(page, v.Consent) {
		logger.Debug("visit", "url", url, "consent", "dismissed")
	}
	transition(stateConsentHandled)

	text, title := pageText(page)

	if phrase := matchPhrase(text, title, v.verification()); phrase != "" {
		transition(stateFailed)
		return listlens.Errorf(listlens.EUNAVAILABLE, "verification-required")
	}
	transition(stateVerified)

	if phrase := matchPhrase(text, title, v.notFound()); phrase != "" {
		transition(stateFailed)
		return listlens.Errorf(listlens.ENOTFOUND, "not-found")
	}
	transition(stateReady)

	return nil
}

// navigate runs the wait-condition escalation ladder. Exhausting every
// rung is a visit failure, not a run abort.
func (v *Visitor) navigate(ctx context.Context, page listlens.Page, url string) error {
	timeout := v.navTimeout()

	var lastErr error
	for i, wait := range waitEscalation {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := page.Navigate(ctx, url, wait, timeout)
		if err == nil {
			return nil
		}
		lastErr = err
		v.logger().Debug("visit",
			"url", url,
			"wait", wait.String(),
			"attempt", i+1,
			"err", err,
		)
		timeout /= 2
	}

	return listlens.Errorf(listlens.EUNAVAILABLE, "navigation failed: %v", lastErr)
}

// dismiss clicks the first visible element located by the cascade. Misses
// and click failures are swallowed: overlays are optional.
func (v *Visitor) dismiss(page listlens.Page, c listlens.Cascade) bool {
	if c.Empty() {
		return false
	}
	for _, cand := range c.Candidates {
		els, err := page.Elements(cand)
		if err != nil || len(els) == 0 {
			continue
		}
		el := els[0]
		if visible, err := el.Visible(); err == nil && !visible {
			continue
		}
		if err := el.Click(); err != nil {
			continue
		}
		return true
	}
	return false
}

func (v *Visitor) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (v *Visitor) navTimeout() time.Duration {
	if v.NavTimeout > 0 {
		return v.NavTimeout
	}
	return DefaultNavTimeout
}

func (v *Visitor) settleDelay() time.Duration {
	if v.SettleDelay > 0 {
		return v.SettleDelay
	}
	return DefaultSettleDelay
}

func (v *Visitor) verification() []string {
	if v.Verification != nil {
		return v.Verification
	}
	return DefaultVerificationPhrases
}

func (v *Visitor) notFound() []string {
	if v.NotFound != nil {
		return v.NotFound
	}
	return DefaultNotFoundPhrases
}

func (v *Visitor) logger() *slog.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return slog.Default()
}

// pageText reads body text and title, degrading to empty strings on error.
func pageText(page listlens.Page) (text, title string) {
	text, _ = page.Text()
	title, _ = page.Title()
	return text, title
}

// matchPhrase returns the first phrase found in the page text or title,
// case-insensitively, or "" when none match.
func matchPhrase(text, title string, phrases []string) string {
	loweredText := strings.ToLower(text)
	loweredTitle := strings.ToLower(title)
	for _, p := range phrases {
		lp := strings.ToLower(p)
		if strings.Contains(loweredText, lp) || strings.Contains(loweredTitle, lp) {
			return p
		}
	}
	return ""
}
