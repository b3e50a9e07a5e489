package rod

import (
	"context"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ktsujino/listlens"
)

// Ensure Page implements listlens.Page at compile time.
var _ listlens.Page = (*Page)(nil)

// Page wraps one Chrome page. A Page is owned by a single scrape operation
// and is not safe for concurrent use.
type Page struct {
	page *rod.Page
}

// Navigate drives the page to the URL and blocks until the wait condition
// is satisfied or the timeout expires. WaitCommit returns as soon as the
// navigation response arrives without waiting for any lifecycle event.
func (p *Page) Navigate(ctx context.Context, url string, wait listlens.WaitCondition, timeout time.Duration) error {
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pg := p.page.Context(navCtx)

	var waitFn func()
	switch wait {
	case listlens.WaitDOMReady:
		waitFn = pg.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	case listlens.WaitFirstPaint:
		waitFn = pg.WaitNavigation(proto.PageLifecycleEventNameFirstPaint)
	case listlens.WaitCommit:
		// No lifecycle wait: Navigate returning is the commit.
	default:
		return listlens.Errorf(listlens.EINVALID, "unsupported wait condition %q", wait)
	}

	if err := pg.Navigate(url); err != nil {
		return err
	}
	if waitFn != nil {
		waitFn()
	}
	// WaitNavigation unblocks on both the lifecycle event and context
	// expiry; only the context tells them apart.
	return navCtx.Err()
}

// URL returns the page's current URL, or "" when it cannot be read.
func (p *Page) URL() string {
	info, err := p.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Title returns the page's document title.
func (p *Page) Title() (string, error) {
	info, err := p.page.Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

// Text returns the page body's visible text.
func (p *Page) Text() (string, error) {
	body, err := p.page.Element("body")
	if err != nil {
		return "", err
	}
	return body.Text()
}

// HTML returns the rendered document HTML.
func (p *Page) HTML() (string, error) {
	return p.page.HTML()
}

// Elements queries the page with the candidate's locator. Text-match
// locators compile to an XPath substring query.
func (p *Page) Elements(sel listlens.SelectorCandidate) ([]listlens.Element, error) {
	var (
		els rod.Elements
		err error
	)
	switch sel.Kind {
	case listlens.LocatorCSS:
		els, err = p.page.Elements(sel.Expr)
	case listlens.LocatorXPath:
		els, err = p.page.ElementsX(sel.Expr)
	case listlens.LocatorText:
		els, err = p.page.ElementsX(textXPath("//", sel.Expr))
	default:
		return nil, listlens.Errorf(listlens.EINVALID, "unsupported locator kind")
	}
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

// Eval runs a JavaScript statement against the page.
func (p *Page) Eval(js string) error {
	_, err := p.page.Eval("() => { " + js + " }")
	return err
}

// Screenshot captures the page as PNG bytes.
func (p *Page) Screenshot(fullPage bool) ([]byte, error) {
	return p.page.Screenshot(fullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

// Close tears down the page. Safe to call after a failed visit.
func (p *Page) Close() error {
	return p.page.Close()
}

func wrapElements(els rod.Elements) []listlens.Element {
	if len(els) == 0 {
		return nil
	}
	out := make([]listlens.Element, len(els))
	for i, el := range els {
		out[i] = &Element{el: el}
	}
	return out
}

// textXPath builds an XPath matching elements whose text contains the
// phrase. prefix scopes the query: "//" for the document, ".//" relative to
// an element.
func textXPath(prefix, phrase string) string {
	return prefix + "*[contains(text(), " + xpathString(phrase) + ")]"
}

// xpathString quotes a literal for embedding in an XPath expression. XPath
// 1.0 has no escape syntax, so strings holding both quote kinds are built
// with concat().
func xpathString(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if part != "" {
			quoted = append(quoted, "'"+part+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
