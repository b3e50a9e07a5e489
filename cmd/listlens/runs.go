package main

import (
	"fmt"

	"github.com/ktsujino/listlens"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := listlens.RunFilter{Limit: c.Limit}
	if c.Site != "" {
		filter.Site = &c.Site
	}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listlens.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'listlens scrape' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-10s  %q\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Site, r.Keyword)
	}

	return nil
}
