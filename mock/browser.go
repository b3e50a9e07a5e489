// Package mock provides func-field mock implementations of listlens
// interfaces for tests.
package mock

import (
	"context"
	"time"

	"github.com/ktsujino/listlens"
)

var _ listlens.Browser = (*Browser)(nil)

// Browser is a mock implementation of listlens.Browser.
type Browser struct {
	NewPageFn func(ctx context.Context, opts listlens.PageOptions) (listlens.Page, error)
	CloseFn   func() error
}

func (b *Browser) NewPage(ctx context.Context, opts listlens.PageOptions) (listlens.Page, error) {
	return b.NewPageFn(ctx, opts)
}

func (b *Browser) Close() error {
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}

var _ listlens.Page = (*Page)(nil)

// Page is a mock implementation of listlens.Page. Nil funcs degrade to
// zero values so tests only wire the operations they exercise.
type Page struct {
	NavigateFn   func(ctx context.Context, url string, wait listlens.WaitCondition, timeout time.Duration) error
	URLFn        func() string
	TitleFn      func() (string, error)
	TextFn       func() (string, error)
	HTMLFn       func() (string, error)
	ElementsFn   func(sel listlens.SelectorCandidate) ([]listlens.Element, error)
	EvalFn       func(js string) error
	ScreenshotFn func(fullPage bool) ([]byte, error)
	CloseFn      func() error
}

func (p *Page) Navigate(ctx context.Context, url string, wait listlens.WaitCondition, timeout time.Duration) error {
	if p.NavigateFn == nil {
		return nil
	}
	return p.NavigateFn(ctx, url, wait, timeout)
}

func (p *Page) URL() string {
	if p.URLFn == nil {
		return ""
	}
	return p.URLFn()
}

func (p *Page) Title() (string, error) {
	if p.TitleFn == nil {
		return "", nil
	}
	return p.TitleFn()
}

func (p *Page) Text() (string, error) {
	if p.TextFn == nil {
		return "", nil
	}
	return p.TextFn()
}

func (p *Page) HTML() (string, error) {
	if p.HTMLFn == nil {
		return "", nil
	}
	return p.HTMLFn()
}

func (p *Page) Elements(sel listlens.SelectorCandidate) ([]listlens.Element, error) {
	if p.ElementsFn == nil {
		return nil, nil
	}
	return p.ElementsFn(sel)
}

func (p *Page) Eval(js string) error {
	if p.EvalFn == nil {
		return nil
	}
	return p.EvalFn(js)
}

func (p *Page) Screenshot(fullPage bool) ([]byte, error) {
	if p.ScreenshotFn == nil {
		return nil, nil
	}
	return p.ScreenshotFn(fullPage)
}

func (p *Page) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

var _ listlens.Element = (*Element)(nil)

// Element is a mock implementation of listlens.Element.
type Element struct {
	TextFn     func() (string, error)
	AttrFn     func(name string) (string, error)
	VisibleFn  func() (bool, error)
	ClickFn    func() error
	FillFn     func(value string) error
	ParentFn   func() (listlens.Element, error)
	ElementsFn func(sel listlens.SelectorCandidate) ([]listlens.Element, error)
}

func (e *Element) Text() (string, error) {
	if e.TextFn == nil {
		return "", nil
	}
	return e.TextFn()
}

func (e *Element) Attr(name string) (string, error) {
	if e.AttrFn == nil {
		return "", nil
	}
	return e.AttrFn(name)
}

func (e *Element) Visible() (bool, error) {
	if e.VisibleFn == nil {
		return true, nil
	}
	return e.VisibleFn()
}

func (e *Element) Click() error {
	if e.ClickFn == nil {
		return nil
	}
	return e.ClickFn()
}

func (e *Element) Fill(value string) error {
	if e.FillFn == nil {
		return nil
	}
	return e.FillFn(value)
}

func (e *Element) Parent() (listlens.Element, error) {
	if e.ParentFn == nil {
		return nil, listlens.Errorf(listlens.ENOTFOUND, "no parent")
	}
	return e.ParentFn()
}

func (e *Element) Elements(sel listlens.SelectorCandidate) ([]listlens.Element, error) {
	if e.ElementsFn == nil {
		return nil, nil
	}
	return e.ElementsFn(sel)
}
