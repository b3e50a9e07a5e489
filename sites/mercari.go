package sites

import (
	"regexp"

	"github.com/ktsujino/listlens"
)

var (
	mercariIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/jp/items/([a-zA-Z0-9]+)`),
		regexp.MustCompile(`/items/([a-zA-Z0-9]+)`),
		regexp.MustCompile(`/item/m([0-9]+)`),
		regexp.MustCompile(`/item/([a-zA-Z0-9]+)`),
	}

	mercariExclude = listlens.ExclusionSet{
		"/help",
		"/guide",
		"/login",
		"/signup",
		"/search",
		"/categories",
		"eagle-insight.com",
		"redirect",
		"rurl=",
	}

	mercariPriceRe = regexp.MustCompile(`[¥￥]?[0-9][0-9,]*`)
)

// Mercari configures the Mercari marketplace. The schema carries trading-card
// auxiliary fields (rarity, set name, card number) populated by
// post-processors over the description and title.
func Mercari() *listlens.Site {
	return &listlens.Site{
		Name:      "mercari",
		SearchURL: "https://www.mercari.com/jp/search/?keyword=%s",
		Schema: listlens.Schema{
			"url", "title", "price", "description", "condition", "shipping",
			"seller", "category", "card_name", "rarity", "set_name",
			"card_number", "image_url",
		},
		LinkCascades: []listlens.Cascade{
			{
				Candidates: []listlens.SelectorCandidate{
					listlens.CSS("a[href*='jp.mercari.com/jp/items/']"),
					listlens.CSS("a[href*='mercari.com/jp/items/']"),
					listlens.CSS("a[href*='mercari.com/items/']"),
					listlens.CSS("a[href*='/jp/items/']"),
					listlens.CSS("a[href*='/items/']"),
					listlens.CSS("section[data-testid='item-cell'] a"),
					listlens.CSS("[data-testid='item-cell'] a"),
					listlens.CSS("a[data-testid='item-cell-link']"),
					listlens.CSS(".items-box a"),
				},
				Attr:    "href",
				Exclude: mercariExclude,
			},
		},
		IDPatterns:       mercariIDPatterns,
		Exclude:          mercariExclude,
		FallbackKeywords: []string{"/jp/items/", "/items/", "/item/m", "mercari.com"},
		Canonical: listlens.CanonicalRule{
			Scheme:      "https",
			Host:        "jp.mercari.com",
			HostAliases: []string{"www.mercari.com", "mercari.com"},
			PathRewrites: []listlens.PathRewrite{
				{From: "/items/", To: "/jp/items/"},
				{From: "/item/", To: "/jp/items/"},
			},
		},
		Fields: []listlens.FieldSpec{
			{
				Name: "title",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("h1[data-testid='item-name']"),
						listlens.CSS("h1.item-name"),
						listlens.CSS("h1.item-detail-name"),
						listlens.CSS("h1"),
						listlens.CSS("[data-testid='item-name']"),
						listlens.CSS(".item-name"),
						listlens.CSS("section[data-testid='item-name'] h1"),
						listlens.CSS("article h1"),
						listlens.CSS("main h1"),
					},
				},
				Reject: []string{"Privacy", "メルカリ"},
				MaxLen: 200,
			},
			{
				Name: "price",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("[data-testid='price']"),
						listlens.CSS(".item-price"),
						listlens.CSS(".price"),
						listlens.CSS("[class*='price']"),
						listlens.CSS("section[data-testid='price']"),
					},
				},
				Validate: mercariPriceRe,
				Fallbacks: []listlens.TextFallback{
					{Pattern: regexp.MustCompile(`¥\s*([0-9,]+)`)},
					{Pattern: regexp.MustCompile(`([0-9,]+)\s*円`)},
					{Pattern: regexp.MustCompile(`現在\s*¥\s*([0-9,]+)`)},
				},
			},
			{
				Name: "description",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("[data-testid='item-description']"),
						listlens.CSS(".item-description"),
						listlens.CSS(".description"),
						listlens.CSS("[class*='description']"),
						listlens.CSS(".item-detail-description"),
					},
				},
				MaxLen: 5000,
			},
			{
				Name: "condition",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("[data-testid='item-condition']"),
						listlens.CSS(".item-condition"),
					},
				},
				MaxLen: 100,
				Fallbacks: []listlens.TextFallback{
					{Label: "商品の状態"},
				},
			},
			{
				Name: "shipping",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("[data-testid='shipping-fee']"),
						listlens.CSS(".shipping-fee"),
					},
				},
				MaxLen: 100,
				Fallbacks: []listlens.TextFallback{
					{Label: "送料"},
				},
			},
			{
				Name: "category",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("[data-testid='category']"),
						listlens.CSS(".item-category"),
					},
				},
				MaxLen: 200,
				Fallbacks: []listlens.TextFallback{
					{Label: "カテゴリー"},
				},
			},
			{
				Name: "image_url",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("[data-testid='item-image'] img"),
						listlens.CSS(".item-image img"),
						listlens.CSS(".item-photo img"),
						listlens.CSS("img[alt*='商品画像']"),
						listlens.CSS(".item-detail-image img"),
					},
					Attr: "src",
				},
			},
		},
		PostProcessors: []listlens.PostProcessor{
			{Target: "card_name", Source: "title", Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?s)^(.+)$`),
			}},
			{Target: "rarity", Source: "description", Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(SRR|URR|HRR|CSR|SAR|SR|UR|HR|RR|PR|R)`),
				regexp.MustCompile(`レアリティ[：:]\s*([^\s]+)`),
				regexp.MustCompile(`レア度[：:]\s*([^\s]+)`),
			}},
			{Target: "rarity", Source: "title", Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(SRR|URR|HRR|SR|UR|HR|RR|PR|R)`),
			}},
			{Target: "set_name", Source: "description", Patterns: []*regexp.Regexp{
				regexp.MustCompile(`セット[：:]\s*([^\n]+)`),
				regexp.MustCompile(`拡張パック[：:]\s*([^\n]+)`),
				regexp.MustCompile(`([^\s]+拡張パック)`),
			}},
			{Target: "card_number", Source: "description", Patterns: []*regexp.Regexp{
				regexp.MustCompile(`カード番号[：:]\s*([^\s]+)`),
				regexp.MustCompile(`No\.\s*([0-9]+)`),
				regexp.MustCompile(`#([0-9]+)`),
			}},
		},
		Consent: listlens.Cascade{
			Candidates: []listlens.SelectorCandidate{
				listlens.XPath("//button[contains(text(), 'Got it')]"),
				listlens.XPath("//button[contains(text(), '同意する')]"),
				listlens.XPath("//button[contains(text(), 'OK')]"),
				listlens.XPath("//button[contains(text(), 'Accept')]"),
				listlens.CSS("[data-testid='cookie-banner-accept']"),
				listlens.CSS("[data-testid='cookie-accept']"),
				listlens.CSS(".cookie-consent button"),
				listlens.CSS(".cookie-accept-button"),
			},
		},
		Popups: listlens.Cascade{
			Candidates: []listlens.SelectorCandidate{
				listlens.CSS("button[aria-label='Close']"),
				listlens.XPath("//button[contains(text(), '×')]"),
			},
		},
		Page: defaultPageOptions(),
	}
}

func defaultPageOptions() listlens.PageOptions {
	return listlens.PageOptions{
		ViewportWidth:  1280,
		ViewportHeight: 900,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Locale:         "ja-JP",
		Timezone:       "Asia/Tokyo",
	}
}
