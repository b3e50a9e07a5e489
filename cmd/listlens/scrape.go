package main

import (
	"fmt"
	"time"

	"github.com/ktsujino/listlens"
	"github.com/ktsujino/listlens/csv"
	"github.com/ktsujino/listlens/scrape"
	"github.com/ktsujino/listlens/sites"
)

// Run executes the scrape command. Zero extracted records is a logged
// outcome, not an error: the exit status only signals resource failures.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	site, err := sites.ByName(c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s (available: %v)\n", listlens.ErrorMessage(err), sites.Names())
		return err
	}

	scraper := &scrape.Scraper{
		Browser:  deps.Browser,
		Site:     site,
		MaxItems: c.Max,
		Logger:   deps.Logger,
	}

	run, err := scraper.Run(deps.Ctx, c.Keyword)
	if err != nil {
		return err
	}

	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: run not persisted: %s\n", listlens.ErrorMessage(err))
	}

	if len(run.Records) == 0 {
		fmt.Fprintf(deps.Stdout, "No records extracted for %q on %s.\n", c.Keyword, c.Site)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d records for %q on %s.\n", len(run.Records), c.Keyword, c.Site)

	if c.NoExport {
		return nil
	}

	writer := csv.NewWriter(c.Output, exportFilename(c.Site, c.Keyword))
	path, err := writer.WriteRecords(deps.Ctx, run.Records)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)

	return nil
}

func exportFilename(site, keyword string) string {
	return fmt.Sprintf("%s_%s_%s.csv", site, keyword, time.Now().Format("20060102_150405"))
}
