// Package http provides the REST API and dashboard over the scrape
// pipeline, plus HTTP-backed collaborator services. Handlers add no
// extraction logic of their own.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ktsujino/listlens"
)

// ShutdownTimeout is the time to wait for in-flight requests on Close.
const ShutdownTimeout = 5 * time.Second

// ScrapeFunc runs one scrape for a site and keyword. The http layer calls
// it without knowing anything about browsers or selectors.
type ScrapeFunc func(ctx context.Context, site, keyword string, maxItems int) (*listlens.Run, error)

// Server exposes the scrape pipeline as a JSON API with a companion
// dashboard page.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Addr is the bind address, e.g. ":8090".
	Addr string

	// Scrape executes scrape requests. Required.
	Scrape ScrapeFunc

	// DefaultSite is used when a request names no site.
	DefaultSite string

	// DefaultMaxItems is used when a request sends no max_items.
	DefaultMaxItems int

	// Runs, when set, enables the run-history endpoints.
	Runs listlens.RunService

	Logger *slog.Logger
}

// NewServer creates a Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		server:          &http.Server{},
		DefaultMaxItems: 10,
		Logger:          slog.Default(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/scrape", s.handleScrape)
	mux.HandleFunc("GET /api/runs", s.handleRunList)
	mux.HandleFunc("GET /api/runs/{id}", s.handleRunGet)
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	s.server.Handler = cors(mux)

	return s
}

// Open begins listening on Addr. It returns once the listener is bound;
// requests are served on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http serve", "err", err)
		}
	}()

	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the server's base URL. Useful in tests where Addr is ":0".
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

type scrapeRequest struct {
	Site     string `json:"site"`
	Keyword  string `json:"keyword"`
	MaxItems int    `json:"max_items"`
}

type scrapeResponse struct {
	Success bool              `json:"success"`
	Items   []listlens.Record `json:"items"`
	Count   int               `json:"count"`
	Error   string            `json:"error,omitempty"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, scrapeResponse{Error: "invalid request body"})
		return
	}
	if req.Keyword == "" {
		writeJSON(w, http.StatusBadRequest, scrapeResponse{Error: "keyword required"})
		return
	}
	if req.Site == "" {
		req.Site = s.DefaultSite
	}
	if req.MaxItems <= 0 {
		req.MaxItems = s.DefaultMaxItems
	}

	run, err := s.Scrape(r.Context(), req.Site, req.Keyword, req.MaxItems)
	if err != nil {
		status := http.StatusInternalServerError
		if listlens.ErrorCode(err) == listlens.EINVALID || listlens.ErrorCode(err) == listlens.ENOTFOUND {
			status = http.StatusBadRequest
		}
		s.Logger.Error("scrape request failed", "site", req.Site, "keyword", req.Keyword, "err", err)
		writeJSON(w, status, scrapeResponse{Error: listlens.ErrorMessage(err)})
		return
	}

	if len(run.Records) == 0 {
		// Zero records is a valid run outcome but an empty API result.
		writeJSON(w, http.StatusNotFound, scrapeResponse{Error: "no items found"})
		return
	}

	writeJSON(w, http.StatusOK, scrapeResponse{
		Success: true,
		Items:   run.Records,
		Count:   len(run.Records),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRunList(w http.ResponseWriter, r *http.Request) {
	if s.Runs == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "run history not enabled"})
		return
	}

	filter := listlens.RunFilter{Limit: 50}
	if site := r.URL.Query().Get("site"); site != "" {
		filter.Site = &site
	}
	if keyword := r.URL.Query().Get("keyword"); keyword != "" {
		filter.Keyword = &keyword
	}

	runs, err := s.Runs.FindRuns(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": listlens.ErrorMessage(err)})
		return
	}
	if runs == nil {
		runs = []*listlens.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleRunGet(w http.ResponseWriter, r *http.Request) {
	if s.Runs == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "run history not enabled"})
		return
	}

	run, err := s.Runs.FindRunByID(r.Context(), r.PathValue("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if listlens.ErrorCode(err) == listlens.ENOTFOUND {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": listlens.ErrorMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// cors allows the dashboard to be served from a different origin during
// development.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
