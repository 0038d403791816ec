package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/siteaudit"
)

// Compile-time interface verification.
var _ siteaudit.ReportStore = (*ReportStore)(nil)

// ReportStore implements siteaudit.ReportStore using SQLite.
type ReportStore struct {
	db *DB
}

// NewReportStore creates a new ReportStore.
func NewReportStore(db *DB) *ReportStore {
	return &ReportStore{db: db}
}

// SaveReport persists one audit run with its pages, broken links and issues.
// All rows are written in a single transaction.
func (s *ReportStore) SaveReport(ctx context.Context, report *siteaudit.Report) error {
	if report == nil {
		return siteaudit.Errorf(siteaudit.EINVALID, "report required")
	}
	if report.ID == "" {
		return siteaudit.Errorf(siteaudit.EINVALID, "report ID required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (
			id, start_url, origin, generated_at,
			crawled_pages, static_resources, broken_links, internal_links, external_links,
			missing_titles, missing_descriptions, missing_h1s,
			titles_out_of_range, descriptions_out_of_range, duplicate_content_pages
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.StartURL, report.Origin, report.GeneratedAt.UTC().Format(time.RFC3339),
		report.Summary.CrawledPages, report.Summary.StaticResources, report.Summary.BrokenLinks,
		report.Summary.InternalLinks, report.Summary.ExternalLinks,
		report.Summary.MissingTitles, report.Summary.MissingDescriptions, report.Summary.MissingH1s,
		report.Summary.TitlesOutOfRange, report.Summary.DescriptionsOutOfRange,
		report.Summary.DuplicateContentPages)
	if err != nil {
		return err
	}

	for _, page := range report.Pages {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pages (run_id, url, status_code, title, description, h1, internal_links, external_links, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, report.ID, page.URL, page.StatusCode, page.Title, page.Description, page.H1,
			page.InternalLinks, page.ExternalLinks, page.ContentHash)
		if err != nil {
			return err
		}
	}

	for _, link := range report.BrokenLinks {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO broken_links (run_id, url, status, detail)
			VALUES (?, ?, ?, ?)
		`, report.ID, link.URL, link.Status, link.Detail)
		if err != nil {
			return err
		}
	}

	for i, message := range report.Issues {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO issues (run_id, position, message)
			VALUES (?, ?, ?)
		`, report.ID, i, message)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RunSummary is one row of the audit history.
type RunSummary struct {
	ID          string
	StartURL    string
	Origin      string
	GeneratedAt time.Time
	Summary     siteaudit.Summary
}

// FindRunByID retrieves one run's summary.
func (s *ReportStore) FindRunByID(ctx context.Context, id string) (*RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, start_url, origin, generated_at,
			crawled_pages, static_resources, broken_links, internal_links, external_links,
			missing_titles, missing_descriptions, missing_h1s,
			titles_out_of_range, descriptions_out_of_range, duplicate_content_pages
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, siteaudit.Errorf(siteaudit.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves run summaries for an origin, newest first. An empty
// origin matches all runs. Limit 0 means no limit.
func (s *ReportStore) FindRuns(ctx context.Context, origin string, limit int) ([]*RunSummary, error) {
	query := `
		SELECT id, start_url, origin, generated_at,
			crawled_pages, static_resources, broken_links, internal_links, external_links,
			missing_titles, missing_descriptions, missing_h1s,
			titles_out_of_range, descriptions_out_of_range, duplicate_content_pages
		FROM runs
		WHERE 1=1`
	var args []any

	if origin != "" {
		query += " AND origin = ?"
		args = append(args, origin)
	}
	query += " ORDER BY generated_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*RunSummary
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func scanRun(scan func(...any) error) (*RunSummary, error) {
	var run RunSummary
	var generatedAt string

	err := scan(&run.ID, &run.StartURL, &run.Origin, &generatedAt,
		&run.Summary.CrawledPages, &run.Summary.StaticResources, &run.Summary.BrokenLinks,
		&run.Summary.InternalLinks, &run.Summary.ExternalLinks,
		&run.Summary.MissingTitles, &run.Summary.MissingDescriptions, &run.Summary.MissingH1s,
		&run.Summary.TitlesOutOfRange, &run.Summary.DescriptionsOutOfRange,
		&run.Summary.DuplicateContentPages)
	if err != nil {
		return nil, err
	}

	run.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated_at: %w", err)
	}

	return &run, nil
}
