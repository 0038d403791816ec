package main

import (
	"fmt"

	"github.com/fwojciec/siteaudit"
	"github.com/fwojciec/siteaudit/crawl"
	"github.com/fwojciec/siteaudit/fs"
	"github.com/fwojciec/siteaudit/report"
	"golang.org/x/sync/errgroup"
)

// Run executes the run command: crawl the site, reconcile against the
// sitemap, and write the report in every requested format.
func (c *RunCmd) Run(deps *Dependencies) error {
	origin, err := siteaudit.OriginOf(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	crawled := 0
	crawler := &crawl.Crawler{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Content:   deps.Content,
		Optimizer: deps.Optimizer,
		Limiter:   crawl.NewDomainLimiter(c.RPS),
		MaxDepth:  c.MaxDepth,
		Progress: func(event crawl.ProgressEvent) {
			switch event.Type {
			case crawl.ProgressFetched:
				crawled++
				fmt.Fprintf(deps.Stdout, "\r[%d] %s", crawled, event.URL)
			case crawl.ProgressBroken:
				if event.Err != nil {
					fmt.Fprintf(deps.Stderr, "broken: %s (%s)\n", event.URL, event.Err)
				} else {
					fmt.Fprintf(deps.Stderr, "broken: %s (status %d)\n", event.URL, event.Status)
				}
			}
		},
	}

	state, err := crawler.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}
	if crawled > 0 {
		fmt.Fprintln(deps.Stdout)
	}

	sitemapURLs, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, origin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	rep := report.Build(state, sitemapURLs, siteaudit.DefaultLimits, c.URL, origin)

	renderers := []siteaudit.ReportRenderer{
		fs.NewJSONRenderer(c.Out),
		fs.NewHTMLRenderer(c.Out),
	}
	if deps.PDF != nil {
		renderers = append(renderers, deps.PDF)
	}

	g, gctx := errgroup.WithContext(deps.Ctx)
	for _, r := range renderers {
		g.Go(func() error {
			return r.Render(gctx, rep)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	if deps.Store != nil {
		// History is an audit trail, not a deliverable; a failed save must
		// not discard an otherwise complete run.
		if err := deps.Store.SaveReport(deps.Ctx, rep); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record run history: %s\n", err)
		}
	}

	s := rep.Summary
	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d broken links, %d static resources)\n",
		s.CrawledPages, s.BrokenLinks, s.StaticResources)
	fmt.Fprintf(deps.Stdout, "Found %d issues\n", len(rep.Issues))
	fmt.Fprintf(deps.Stdout, "Report written to %s\n", c.Out)
	return nil
}
