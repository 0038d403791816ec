package main

import (
	"context"
	"io"

	"github.com/fwojciec/siteaudit"
	"github.com/fwojciec/siteaudit/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   siteaudit.Fetcher
	Extractor siteaudit.Extractor
	Content   siteaudit.ContentExtractor
	Optimizer siteaudit.MetaOptimizer
	Sitemaps  siteaudit.SitemapService
	Store     siteaudit.ReportStore
	History   *sqlite.ReportStore

	// PDF is set only when the run command requests PDF output.
	PDF siteaudit.ReportRenderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Path to the audit history database (default: $SITEAUDIT_DB or ~/.siteaudit/siteaudit.db)"`

	Run     RunCmd     `cmd:"" help:"Audit a site and write a report"`
	History HistoryCmd `cmd:"" help:"List past audit runs"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URL      string  `arg:"" help:"Start URL of the site to audit"`
	MaxDepth int     `default:"10" help:"Maximum crawl depth"`
	Out      string  `short:"o" default:"audit" help:"Output directory for report files"`
	PDF      bool    `help:"Also render the report as PDF (requires Chrome)"`
	NoAI     bool    `name:"no-ai" help:"Skip AI metadata suggestions"`
	RPS      float64 `default:"1.0" help:"Maximum requests per second per domain"`
	Verbose  bool    `short:"v" help:"Log every request"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Origin string `help:"Only show runs for this origin"`
	Limit  int    `default:"10" help:"Maximum number of runs to show"`
}
