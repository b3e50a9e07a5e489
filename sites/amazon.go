package sites

import (
	"regexp"

	"github.com/ktsujino/listlens"
)

var (
	amazonIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/dp/([A-Z0-9]{10})`),
		regexp.MustCompile(`/gp/product/([A-Z0-9]{10})`),
	}

	amazonExclude = listlens.ExclusionSet{
		"/help",
		"/gp/help",
		"/customer",
		"/ap/signin",
		"/ref=",
	}
)

// Amazon configures the Amazon JP retail site. Its stable element IDs need
// far shorter cascades than the marketplace sites.
func Amazon() *listlens.Site {
	return &listlens.Site{
		Name:      "amazon",
		SearchURL: "https://www.amazon.co.jp/s?k=%s",
		Schema: listlens.Schema{
			"url", "title", "price", "description", "image_url",
		},
		LinkCascades: []listlens.Cascade{
			{
				Candidates: []listlens.SelectorCandidate{
					listlens.CSS("a[href*='/dp/']"),
					listlens.CSS("a[href*='/gp/product/']"),
					listlens.CSS("h2 a[href*='/dp/']"),
					listlens.CSS(".s-result-item a[href*='/dp/']"),
				},
				Attr:    "href",
				Exclude: amazonExclude,
			},
		},
		IDPatterns:       amazonIDPatterns,
		Exclude:          amazonExclude,
		FallbackKeywords: []string{"/dp/", "/gp/product/"},
		Canonical: listlens.CanonicalRule{
			Scheme:      "https",
			Host:        "www.amazon.co.jp",
			HostAliases: []string{"amazon.co.jp"},
		},
		Fields: []listlens.FieldSpec{
			{
				Name: "title",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("#productTitle"),
						listlens.CSS("h1.a-size-large"),
						listlens.CSS("h1"),
					},
				},
				MaxLen: 200,
			},
			{
				Name: "price",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS(".a-price-whole"),
						listlens.CSS("#priceblock_ourprice"),
						listlens.CSS("#priceblock_dealprice"),
						listlens.CSS(".a-price .a-offscreen"),
						listlens.CSS("span.a-price"),
					},
				},
				Validate: regexp.MustCompile(`[0-9][0-9,]*`),
				Fallbacks: []listlens.TextFallback{
					{Pattern: regexp.MustCompile(`￥\s*([0-9,]+)`)},
					{Pattern: regexp.MustCompile(`¥\s*([0-9,]+)`)},
				},
			},
			{
				Name: "description",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("#feature-bullets"),
						listlens.CSS("#productDescription"),
					},
				},
				MaxLen: 5000,
			},
			{
				Name: "image_url",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("#landingImage"),
						listlens.CSS("#imgBlkFront"),
					},
					Attr: "src",
				},
			},
		},
		Consent: listlens.Cascade{
			Candidates: []listlens.SelectorCandidate{
				listlens.CSS("#sp-cc-accept"),
				listlens.XPath("//button[contains(text(), 'Accept')]"),
				listlens.XPath("//button[contains(text(), '同意')]"),
			},
		},
		Page: defaultPageOptions(),
	}
}
