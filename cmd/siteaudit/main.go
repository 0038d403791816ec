package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siteaudit/gemini"
	auditgoquery "github.com/fwojciec/siteaudit/goquery"
	siteaudithttp "github.com/fwojciec/siteaudit/http"
	"github.com/fwojciec/siteaudit/rod"
	auditslog "github.com/fwojciec/siteaudit/slog"
	"github.com/fwojciec/siteaudit/sqlite"
	"github.com/fwojciec/siteaudit/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding the audit run history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteaudit"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteaudit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEAUDIT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Store = sqlite.NewReportStore(m.DB)
	deps.History = sqlite.NewReportStore(m.DB)

	if cmd == "run" {
		level := slog.LevelWarn
		if cli.Run.Verbose {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		fetcher := auditslog.NewLoggingFetcher(siteaudithttp.NewFetcher(), logger)
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Extractor = auditgoquery.NewExtractor()
		deps.Content = trafilatura.NewExtractor()
		deps.Sitemaps = auditslog.NewLoggingSitemapService(siteaudithttp.NewSitemapService(nil), logger)

		if !cli.Run.NoAI {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey or pass --no-ai")
				return fmt.Errorf("GEMINI_API_KEY not set")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			deps.Optimizer = auditslog.NewLoggingMetaOptimizer(gemini.NewOptimizer(client), logger)
		}

		if cli.Run.PDF {
			pdf, err := rod.NewPDFRenderer(cli.Run.Out)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --pdf")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer pdf.Close()
			deps.PDF = pdf
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SITEAUDIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "siteaudit.db"
	}
	dir := filepath.Join(home, ".siteaudit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "siteaudit.db")
}
