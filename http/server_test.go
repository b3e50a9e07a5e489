package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/ktsujino/listlens"
	lenshttp "github.com/ktsujino/listlens/http"
	"github.com/ktsujino/listlens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustOpenServer opens a server on an ephemeral port, closed on cleanup.
func MustOpenServer(tb testing.TB, configure func(*lenshttp.Server)) *lenshttp.Server {
	tb.Helper()

	s := lenshttp.NewServer()
	s.Addr = ":0"
	s.DefaultSite = "mercari"
	if configure != nil {
		configure(s)
	}
	if err := s.Open(); err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() {
		if err := s.Close(); err != nil {
			tb.Fatal(err)
		}
	})
	return s
}

func postJSON(tb testing.TB, url string, body any) *http.Response {
	tb.Helper()

	data, err := json.Marshal(body)
	require.NoError(tb, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(tb, err)
	tb.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(tb testing.TB, r io.Reader, v any) {
	tb.Helper()
	require.NoError(tb, json.NewDecoder(r).Decode(v))
}

func TestServer_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("successful scrape returns items and count", func(t *testing.T) {
		t.Parallel()

		var gotSite, gotKeyword string
		var gotMax int
		s := MustOpenServer(t, func(s *lenshttp.Server) {
			s.Scrape = func(ctx context.Context, site, keyword string, maxItems int) (*listlens.Run, error) {
				gotSite, gotKeyword, gotMax = site, keyword, maxItems
				return &listlens.Run{
					Site:    site,
					Keyword: keyword,
					Records: []listlens.Record{
						{"url": "u1", "title": "ポケモンカード リザードン"},
						{"url": "u2", "title": "ポケモンカード ピカチュウ"},
					},
				}, nil
			}
		})

		resp := postJSON(t, s.URL()+"/api/scrape", map[string]any{
			"keyword":   "ポケモンカード",
			"max_items": 5,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Success bool              `json:"success"`
			Items   []listlens.Record `json:"items"`
			Count   int               `json:"count"`
		}
		decodeBody(t, resp.Body, &body)

		assert.True(t, body.Success)
		assert.Equal(t, 2, body.Count)
		require.Len(t, body.Items, 2)
		assert.Equal(t, "u1", body.Items[0]["url"])

		// Defaults and passthrough.
		assert.Equal(t, "mercari", gotSite)
		assert.Equal(t, "ポケモンカード", gotKeyword)
		assert.Equal(t, 5, gotMax)
	})

	t.Run("missing keyword is a bad request", func(t *testing.T) {
		t.Parallel()

		s := MustOpenServer(t, func(s *lenshttp.Server) {
			s.Scrape = func(ctx context.Context, site, keyword string, maxItems int) (*listlens.Run, error) {
				t.Fatal("scrape called without keyword")
				return nil, nil
			}
		})

		resp := postJSON(t, s.URL()+"/api/scrape", map[string]any{"site": "mercari"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("zero records reports no items found", func(t *testing.T) {
		t.Parallel()

		s := MustOpenServer(t, func(s *lenshttp.Server) {
			s.Scrape = func(ctx context.Context, site, keyword string, maxItems int) (*listlens.Run, error) {
				return &listlens.Run{Site: site, Keyword: keyword}, nil
			}
		})

		resp := postJSON(t, s.URL()+"/api/scrape", map[string]any{"keyword": "nothing"})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "no items found", body.Error)
	})

	t.Run("unknown site maps to a bad request", func(t *testing.T) {
		t.Parallel()

		s := MustOpenServer(t, func(s *lenshttp.Server) {
			s.Scrape = func(ctx context.Context, site, keyword string, maxItems int) (*listlens.Run, error) {
				return nil, listlens.Errorf(listlens.ENOTFOUND, "unknown site %q", site)
			}
		})

		resp := postJSON(t, s.URL()+"/api/scrape", map[string]any{"site": "nope", "keyword": "x"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("internal failure maps to a server error", func(t *testing.T) {
		t.Parallel()

		s := MustOpenServer(t, func(s *lenshttp.Server) {
			s.Scrape = func(ctx context.Context, site, keyword string, maxItems int) (*listlens.Run, error) {
				return nil, listlens.Errorf(listlens.EINTERNAL, "browser crashed")
			}
		})

		resp := postJSON(t, s.URL()+"/api/scrape", map[string]any{"keyword": "x"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s := MustOpenServer(t, nil)

	resp, err := http.Get(s.URL() + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Runs(t *testing.T) {
	t.Parallel()

	t.Run("lists runs through the service", func(t *testing.T) {
		t.Parallel()

		var gotFilter listlens.RunFilter
		s := MustOpenServer(t, func(s *lenshttp.Server) {
			s.Runs = &mock.RunService{
				FindRunsFn: func(ctx context.Context, filter listlens.RunFilter) ([]*listlens.Run, error) {
					gotFilter = filter
					return []*listlens.Run{{ID: "r1", Site: "mercari", Keyword: "pokemon"}}, nil
				},
			}
		})

		resp, err := http.Get(s.URL() + "/api/runs?site=mercari&keyword=pokemon")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var runs []*listlens.Run
		decodeBody(t, resp.Body, &runs)
		require.Len(t, runs, 1)
		assert.Equal(t, "r1", runs[0].ID)

		require.NotNil(t, gotFilter.Site)
		assert.Equal(t, "mercari", *gotFilter.Site)
		require.NotNil(t, gotFilter.Keyword)
		assert.Equal(t, "pokemon", *gotFilter.Keyword)
	})

	t.Run("fetches one run by id", func(t *testing.T) {
		t.Parallel()

		s := MustOpenServer(t, func(s *lenshttp.Server) {
			s.Runs = &mock.RunService{
				FindRunByIDFn: func(ctx context.Context, id string) (*listlens.Run, error) {
					if id != "r1" {
						return nil, listlens.Errorf(listlens.ENOTFOUND, "run not found")
					}
					return &listlens.Run{ID: "r1", Records: []listlens.Record{{"url": "u"}}}, nil
				},
			}
		})

		resp, err := http.Get(s.URL() + "/api/runs/r1")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		missing, err := http.Get(s.URL() + "/api/runs/r2")
		require.NoError(t, err)
		defer missing.Body.Close()
		assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	})

	t.Run("history endpoints 404 without a run service", func(t *testing.T) {
		t.Parallel()

		s := MustOpenServer(t, nil)

		resp, err := http.Get(s.URL() + "/api/runs")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_Dashboard(t *testing.T) {
	t.Parallel()

	s := MustOpenServer(t, nil)

	resp, err := http.Get(s.URL() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<html")
}
