package rod

import (
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ktsujino/listlens"
)

// Ensure Element implements listlens.Element at compile time.
var _ listlens.Element = (*Element)(nil)

// Element wraps one DOM element handle.
type Element struct {
	el *rod.Element
}

// Text returns the element's visible text.
func (e *Element) Text() (string, error) {
	return e.el.Text()
}

// Attr reads an attribute value. An absent attribute is "", not an error.
func (e *Element) Attr(name string) (string, error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// Visible reports whether the element is rendered and on screen.
func (e *Element) Visible() (bool, error) {
	return e.el.Visible()
}

// Click performs a single left click.
func (e *Element) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

// Fill types the value into the element.
func (e *Element) Fill(value string) error {
	return e.el.Input(value)
}

// Parent returns the element's parent node.
func (e *Element) Parent() (listlens.Element, error) {
	parent, err := e.el.Parent()
	if err != nil {
		return nil, err
	}
	return &Element{el: parent}, nil
}

// Elements queries within the element's subtree.
func (e *Element) Elements(sel listlens.SelectorCandidate) ([]listlens.Element, error) {
	var (
		els rod.Elements
		err error
	)
	switch sel.Kind {
	case listlens.LocatorCSS:
		els, err = e.el.Elements(sel.Expr)
	case listlens.LocatorXPath:
		els, err = e.el.ElementsX(sel.Expr)
	case listlens.LocatorText:
		els, err = e.el.ElementsX(textXPath(".//", sel.Expr))
	default:
		return nil, listlens.Errorf(listlens.EINVALID, "unsupported locator kind")
	}
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}
