package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/ktsujino/listlens"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Browser listlens.Browser
	Runs    listlens.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape a site for a keyword and export CSV"`
	Compare CompareCmd `cmd:"" help:"Compare prices for a keyword across two sites"`
	Diff    DiffCmd    `cmd:"" help:"Compare two screenshots pixel by pixel"`
	Serve   ServeCmd   `cmd:"" help:"Run the scrape API and dashboard"`
	Runs    RunsCmd    `cmd:"" help:"List stored scrape runs"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Site     string `arg:"" help:"Site to scrape (mercari, amazon, crowdworks)"`
	Keyword  string `arg:"" help:"Search keyword"`
	Max      int    `short:"n" default:"10" help:"Maximum items to extract"`
	Output   string `short:"o" default:"output" help:"Output directory for the CSV export"`
	Headed   bool   `help:"Run the browser with a visible window"`
	NoExport bool   `help:"Skip the CSV export"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Keyword string `arg:"" help:"Search keyword"`
	Source  string `default:"mercari" help:"Site whose items are ranked"`
	Against string `default:"amazon" help:"Site providing counterpart prices"`
	Max     int    `short:"n" default:"10" help:"Maximum items per site"`
	Top     int    `default:"5" help:"Number of cheapest matches to report"`
	Output  string `short:"o" default:"output" help:"Output directory for the CSV export"`
	Headed  bool   `help:"Run the browser with a visible window"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	Before    string  `arg:"" help:"Baseline screenshot path"`
	After     string  `arg:"" help:"Candidate screenshot path"`
	Threshold float64 `default:"5.0" help:"Warn threshold as a difference percentage"`
	Artifact  string  `help:"Write a visual diff image to this path"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `default:":8090" help:"Bind address"`
	Site   string `default:"mercari" help:"Default site for requests that name none"`
	Max    int    `short:"n" default:"10" help:"Default maximum items per request"`
	Headed bool   `help:"Run the browser with a visible window"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Site    string `help:"Filter by site"`
	Keyword string `help:"Filter by keyword"`
	Limit   int    `default:"20" help:"Maximum runs to list"`
}
