package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ktsujino/listlens"
	lenshttp "github.com/ktsujino/listlens/http"
	"github.com/ktsujino/listlens/scrape"
	"github.com/ktsujino/listlens/sites"
)

// Run executes the serve command: the scrape API and dashboard stay up
// until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if _, err := sites.ByName(c.Site); err != nil {
		return err
	}

	server := lenshttp.NewServer()
	server.Addr = c.Addr
	server.DefaultSite = c.Site
	server.DefaultMaxItems = c.Max
	server.Runs = deps.Runs
	server.Logger = deps.Logger
	server.Scrape = func(ctx context.Context, siteName, keyword string, maxItems int) (*listlens.Run, error) {
		site, err := sites.ByName(siteName)
		if err != nil {
			return nil, err
		}
		scraper := &scrape.Scraper{
			Browser:  deps.Browser,
			Site:     site,
			MaxItems: maxItems,
			Logger:   deps.Logger,
		}
		run, err := scraper.Run(ctx, keyword)
		if err != nil {
			return nil, err
		}
		if err := deps.Runs.CreateRun(ctx, run); err != nil {
			deps.Logger.Warn("run not persisted", "err", err)
		}
		return run, nil
	}

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s (default site %s)\n", server.URL(), c.Site)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
