package sites

import (
	"regexp"

	"github.com/ktsujino/listlens"
)

var (
	crowdworksIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/jobs/(\d+)(?:/|$)`),
	}

	crowdworksExclude = listlens.ExclusionSet{
		"/category/",
		"/group/",
		"/search",
		"/login",
		"/signup",
		"/help",
		"/about",
	}

	jpDateRe = `\d{4}年\d{1,2}月\d{1,2}日|\d{1,2}/\d{1,2}|\d{1,2}月\d{1,2}日`
)

// CrowdWorks configures the CrowdWorks freelance-jobs board. Budget,
// deadline, and applicant count mostly come from label heuristics and
// body-text regexes since the board's markup carries few stable classes.
func CrowdWorks() *listlens.Site {
	return &listlens.Site{
		Name:      "crowdworks",
		SearchURL: "https://crowdworks.jp/public/jobs/search?search%5Bkeywords%5D=%s",
		Schema: listlens.Schema{
			"url", "title", "description", "price", "deadline", "category",
			"posted_date", "applicants",
		},
		LinkCascades: []listlens.Cascade{
			{
				Candidates: []listlens.SelectorCandidate{
					listlens.CSS("a[href*='/public/jobs/']"),
					listlens.CSS("a[href*='/jobs/']"),
					listlens.CSS(".job-item a"),
					listlens.CSS(".job-list-item a"),
					listlens.CSS("[data-job-id] a"),
					listlens.CSS("article a"),
					listlens.CSS(".card a"),
				},
				Attr:    "href",
				Exclude: crowdworksExclude,
			},
		},
		IDPatterns:       crowdworksIDPatterns,
		Exclude:          crowdworksExclude,
		FallbackKeywords: []string{"/jobs/"},
		Canonical: listlens.CanonicalRule{
			Scheme:      "https",
			Host:        "crowdworks.jp",
			HostAliases: []string{"www.crowdworks.jp"},
		},
		Fields: []listlens.FieldSpec{
			{
				Name: "title",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("h1.job-title"),
						listlens.CSS("h1"),
						listlens.CSS(".job-title"),
						listlens.CSS("[data-job-title]"),
					},
				},
				Reject: []string{"クラウドワークス"},
				MaxLen: 200,
			},
			{
				Name: "description",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS(".job-description"),
						listlens.CSS(".description"),
						listlens.CSS("[data-description]"),
						listlens.CSS(".job-detail"),
						listlens.CSS(".detail-content"),
						listlens.CSS("article .content"),
					},
				},
				MaxLen: 5000,
			},
			{
				Name: "price",
				Cascade: listlens.Cascade{
					Candidates: []listlens.SelectorCandidate{
						listlens.CSS("[data-price]"),
						listlens.CSS(".price"),
						listlens.CSS(".budget"),
						listlens.CSS(".job-budget"),
					},
				},
				Validate: regexp.MustCompile(`([0-9,]+万?円)`),
				Fallbacks: []listlens.TextFallback{
					{Pattern: regexp.MustCompile(`([0-9,]+万?円)`)},
					{Label: "予算"},
					{Label: "報酬"},
				},
			},
			{
				Name: "deadline",
				Fallbacks: []listlens.TextFallback{
					{Pattern: regexp.MustCompile(`応募期限\s*(` + jpDateRe + `)`)},
					{Label: "応募期限"},
				},
			},
			{
				Name: "posted_date",
				Fallbacks: []listlens.TextFallback{
					{Pattern: regexp.MustCompile(`掲載日\s*(` + jpDateRe + `)`)},
					{Label: "掲載日"},
				},
			},
			{
				Name: "applicants",
				Fallbacks: []listlens.TextFallback{
					{Pattern: regexp.MustCompile(`応募した人\s*(\d+)\s*人`)},
					{Label: "応募した人"},
				},
			},
		},
		Page: defaultPageOptions(),
	}
}
