package listlens

import (
	"context"
	"time"
)

// WaitCondition selects how long navigation blocks before the page is
// considered loaded. Conditions are ordered strictest first; the session
// manager escalates toward WaitCommit when navigation times out.
type WaitCondition int

// Navigation wait conditions, strictest first.
const (
	// WaitDOMReady waits for DOM content to be parsed. This is the primary
	// condition: full network idle is deliberately avoided because
	// marketplace pages keep background connections open indefinitely.
	WaitDOMReady WaitCondition = iota

	// WaitFirstPaint waits only until the page has started rendering.
	WaitFirstPaint

	// WaitCommit returns as soon as navigation is acknowledged.
	WaitCommit
)

// String returns the condition's identifier.
func (w WaitCondition) String() string {
	switch w {
	case WaitFirstPaint:
		return "first-paint"
	case WaitCommit:
		return "commit"
	default:
		return "dom-ready"
	}
}

// PageOptions configures the isolated context a page runs in.
type PageOptions struct {
	ViewportWidth  int
	ViewportHeight int
	UserAgent      string
	Locale         string
	Timezone       string
}

// Browser launches pages in isolated contexts. Implementations hide the
// underlying automation engine.
//
// Opening a page is the only resource-level operation in the core: a failure
// here is fatal to the run and propagates, unlike page-local failures which
// degrade to "not found".
type Browser interface {
	// NewPage opens a page in a fresh context. The caller owns the page and
	// must Close it on every exit path.
	NewPage(ctx context.Context, opts PageOptions) (Page, error)

	// Close releases browser resources.
	Close() error
}

// Page is a single browser page. All operations degrade gracefully: element
// queries return errors that callers treat as "not found", never as run
// aborts.
type Page interface {
	// Navigate loads the URL, blocking until the wait condition is met or
	// the timeout elapses.
	Navigate(ctx context.Context, url string, wait WaitCondition, timeout time.Duration) error

	// URL returns the last navigated URL.
	URL() string

	// Title returns the document title.
	Title() (string, error)

	// Text returns the visible text of the document body.
	Text() (string, error)

	// HTML returns the current serialized document.
	HTML() (string, error)

	// Elements returns all elements matching the selector, in document order.
	Elements(sel SelectorCandidate) ([]Element, error)

	// Eval runs a script against the page, discarding its result.
	Eval(js string) error

	// Screenshot captures the page as an encoded image.
	Screenshot(fullPage bool) ([]byte, error)

	// Close tears down the page and its context. Safe to call once per page;
	// the session discipline requires it on every exit path.
	Close() error
}

// Element is a handle to a located DOM element.
type Element interface {
	// Text returns the element's inner text.
	Text() (string, error)

	// Attr returns the named attribute's value, or "" when absent.
	Attr(name string) (string, error)

	// Visible reports whether the element is rendered and visible.
	Visible() (bool, error)

	// Click clicks the element.
	Click() error

	// Fill types the value into the element.
	Fill(value string) error

	// Parent returns the element's parent node.
	Parent() (Element, error)

	// Elements returns matching descendant elements, in document order.
	Elements(sel SelectorCandidate) ([]Element, error)
}
