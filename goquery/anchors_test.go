package goquery_test

import (
	"testing"

	lensquery "github.com/ktsujino/listlens/goquery"
	"github.com/stretchr/testify/assert"
)

func TestAnchors(t *testing.T) {
	t.Parallel()

	t.Run("keeps keyword-bearing hrefs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/items/m2">second listed first</a>
			<a href="/about">about</a>
			<a href="/items/m1">first listed second</a>
		</body></html>`

		hrefs := lensquery.Anchors(html, []string{"item"})
		assert.Equal(t, []string{"/items/m2", "/items/m1"}, hrefs)
	})

	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/Items/M1">x</a>`
		hrefs := lensquery.Anchors(html, []string{"item"})
		assert.Equal(t, []string{"/Items/M1"}, hrefs)
	})

	t.Run("unwraps one level of redirect wrappers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="https://r.example.com/go?rurl=https%3A%2F%2Fshop.example.com%2Fitems%2Fm1">tracked</a>
		</body></html>`

		hrefs := lensquery.Anchors(html, []string{"items"})
		assert.Equal(t, []string{"https://shop.example.com/items/m1"}, hrefs)
	})

	t.Run("skips non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="javascript:openItem()">js</a>
			<a href="mailto:items@example.com">mail</a>
			<a href="/items/m1">real</a>
		</body></html>`

		hrefs := lensquery.Anchors(html, []string{"item"})
		assert.Equal(t, []string{"/items/m1"}, hrefs)
	})

	t.Run("no keywords means no matches", func(t *testing.T) {
		t.Parallel()

		hrefs := lensquery.Anchors(`<a href="/items/m1">x</a>`, nil)
		assert.Empty(t, hrefs)
	})
}
