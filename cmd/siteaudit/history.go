package main

import (
	"fmt"

	"github.com/fwojciec/siteaudit"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.History.FindRuns(deps.Ctx, c.Origin, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No audit runs recorded. Use 'siteaudit run' to create one.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d pages, %d broken, %d issues flagged\n",
			run.GeneratedAt.Format("2006-01-02 15:04"), run.ID, run.StartURL,
			run.Summary.CrawledPages, run.Summary.BrokenLinks,
			run.Summary.MissingTitles+run.Summary.MissingDescriptions+run.Summary.MissingH1s)
	}

	return nil
}
