package main

import (
	"context"
	"fmt"

	"github.com/ktsujino/listlens"
	"github.com/ktsujino/listlens/csv"
	"github.com/ktsujino/listlens/scrape"
	"github.com/ktsujino/listlens/sites"
	"golang.org/x/sync/errgroup"
)

// Run executes the compare command: scrape both sites, match items by
// shared title keywords, and report the source items that are cheaper than
// their counterparts.
func (c *CompareCmd) Run(deps *Dependencies) error {
	source, err := sites.ByName(c.Source)
	if err != nil {
		return err
	}
	against, err := sites.ByName(c.Against)
	if err != nil {
		return err
	}

	// Each site's run is sequential internally; the two sites are
	// independent and can proceed in parallel on separate pages.
	var sourceRun, againstRun *listlens.Run
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() (err error) {
		sourceRun, err = c.scrape(ctx, deps, source)
		return err
	})
	g.Go(func() (err error) {
		againstRun, err = c.scrape(ctx, deps, against)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if len(sourceRun.Records) == 0 || len(againstRun.Records) == 0 {
		fmt.Fprintf(deps.Stdout, "Not enough data to compare: %s=%d items, %s=%d items.\n",
			c.Source, len(sourceRun.Records), c.Against, len(againstRun.Records))
		return nil
	}

	comps := listlens.MatchRecords(sourceRun.Records, againstRun.Records)
	cheaper := listlens.Cheaper(comps, c.Top)

	if len(cheaper) == 0 {
		fmt.Fprintf(deps.Stdout, "No matched items found where %s is cheaper than %s.\n", c.Source, c.Against)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d items on %s cheaper than their %s counterpart:\n", len(cheaper), c.Source, c.Against)
	for _, rec := range cheaper {
		fmt.Fprintf(deps.Stdout, "  %s  %s (vs %s)  %s\n",
			rec[listlens.FieldPriceDifference], rec["price"], rec[listlens.FieldMatchedPrice], rec["title"])
	}

	writer := csv.NewWriter(c.Output, exportFilename("compare_"+c.Source+"_"+c.Against, c.Keyword))
	path, err := writer.WriteRecords(deps.Ctx, cheaper)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)

	return nil
}

func (c *CompareCmd) scrape(ctx context.Context, deps *Dependencies, site *listlens.Site) (*listlens.Run, error) {
	scraper := &scrape.Scraper{
		Browser:  deps.Browser,
		Site:     site,
		MaxItems: c.Max,
		Logger:   deps.Logger,
	}
	run, err := scraper.Run(ctx, c.Keyword)
	if err != nil {
		return nil, err
	}
	if err := deps.Runs.CreateRun(ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: run not persisted: %s\n", listlens.ErrorMessage(err))
	}
	return run, nil
}
