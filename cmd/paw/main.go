// Command paw scrapes, crawls, and extracts structured data from websites.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pawhq/paw"
	"github.com/pawhq/paw/crawl"
	"github.com/pawhq/paw/gemini"
	"github.com/pawhq/paw/goquery"
	"github.com/pawhq/paw/htmltomarkdown"
	pawhttp "github.com/pawhq/paw/http"
	"github.com/pawhq/paw/openai"
	pawslog "github.com/pawhq/paw/slog"
	"github.com/pawhq/paw/sqlite"
	"github.com/pawhq/paw/trafilatura"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// CrawlService for end-to-end testing.
	CrawlService paw.CrawlService
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
		kong.Name("paw"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'paw --help' to see available commands")
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

	logger := newLogger(stderr, cli.Verbose)

	// Commands touching the archive need the database.
	needsDB := cmd == "list" || cmd == "show" || cmd == "delete" || (cmd == "crawl" && cli.Crawl.Save)
	if needsDB {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAW_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.CrawlService = sqlite.NewCrawlService(m.DB)
		deps.DB = m.DB
		deps.Crawls = m.CrawlService
	}

	// Commands that fetch pages need the crawler pipeline.
	switch cmd {
	case "scrape", "crawl", "extract":
		flags := fetchFlags(cli, cmd)

		fetcher, err := newFetcher(flags, logger, cli.Verbose)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		var contents paw.ContentExtractor
		if flags.ContentOnly {
			contents = trafilatura.NewExtractor()
		} else {
			contents = goquery.NewCleaner()
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:   fetcher,
			Links:     goquery.NewSelector(),
			Contents:  contents,
			Converter: htmltomarkdown.NewConverter(flags.FilterOptions()),
			Limiter:   crawl.NewDelayLimiter(time.Duration(flags.Delay) * time.Millisecond),
		}

		if cmd == "crawl" && cli.Crawl.Sitemap {
			deps.Sitemaps = pawhttp.NewSitemapService(nil)
			if cli.Verbose {
				deps.Sitemaps = pawslog.NewLoggingSitemapService(deps.Sitemaps, logger)
			}
		}

		if cmd == "extract" {
			extractor, err := newSchemaExtractor(ctx, cli.Extract.Model, cli.Extract.Temperature, stderr)
			if err != nil {
				return err
			}
			if cli.Verbose {
				extractor = pawslog.NewLoggingSchemaExtractor(extractor, logger)
			}
			deps.Crawler.Extractor = extractor
		}
	}

	return kongCtx.Run(deps)
}

// fetchFlags returns the fetch flags for the active command.
func fetchFlags(cli *CLI, cmd string) *FetchFlags {
	switch cmd {
	case "crawl":
		return &cli.Crawl.FetchFlags
	case "extract":
		return &cli.Extract.FetchFlags
	default:
		return &cli.Scrape.FetchFlags
	}
}

// newFetcher builds the HTTP fetcher from the shared flags.
func newFetcher(flags *FetchFlags, logger *slog.Logger, verbose bool) (paw.Fetcher, error) {
	headers := make(map[string]string, len(flags.Header))
	for _, h := range flags.Header {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, paw.Errorf(paw.EINVALID, "invalid header %q (want 'Name: Value')", h)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	var fetcher paw.Fetcher = pawhttp.NewFetcher(pawhttp.WithHeaders(headers))
	if verbose {
		fetcher = pawslog.NewLoggingFetcher(fetcher, logger)
	}
	return fetcher, nil
}

// newSchemaExtractor builds the LLM extractor for the given model.
// Models beginning with "gemini" use the Gemini API; everything else
// uses the OpenAI API.
func newSchemaExtractor(ctx context.Context, model string, temperature float64, stderr io.Writer) (paw.SchemaExtractor, error) {
	if strings.HasPrefix(model, "gemini") {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, paw.Errorf(paw.EINVALID, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		return gemini.NewExtractor(client,
			gemini.WithModel(model),
			gemini.WithTemperature(float32(temperature)),
		), nil
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
		return nil, paw.Errorf(paw.EINVALID, "OPENAI_API_KEY not set")
	}

	client := oai.NewClient(option.WithAPIKey(apiKey))
	return openai.NewExtractor(client,
		openai.WithModel(model),
		openai.WithTemperature(temperature),
	), nil
}

// newLogger builds the logger. Debug-level output is only enabled in
// verbose mode.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("PAW_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "paw.db"
	}
	dir := filepath.Join(home, ".paw")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "paw.db")
}
