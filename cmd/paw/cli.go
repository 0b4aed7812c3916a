package main

import (
	"context"
	"io"

	"github.com/pawhq/paw"
	"github.com/pawhq/paw/crawl"
	"github.com/pawhq/paw/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Crawls   paw.CrawlService
	Sitemaps paw.SitemapService
	Crawler  *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `help:"Database path (defaults to PAW_DB or ~/.paw/paw.db)"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape a single page to markdown"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a site breadth-first and combine pages"`
	Extract ExtractCmd `cmd:"" help:"Extract structured data from a site using an LLM"`
	List    ListCmd    `cmd:"" help:"List archived crawls"`
	Show    ShowCmd    `cmd:"" help:"Show an archived crawl"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived crawl"`
}

// FetchFlags are shared by all commands that fetch pages.
type FetchFlags struct {
	Header      []string `short:"H" help:"Extra request header as 'Name: Value' (repeatable)"`
	Delay       int      `default:"500" help:"Delay between requests in milliseconds"`
	ContentOnly bool     `help:"Isolate main content instead of converting the whole page"`

	IgnoreLinks       bool `default:"true" negatable:"" help:"Drop hyperlinks, keeping their text"`
	IgnoreImages      bool `default:"true" negatable:"" help:"Drop images"`
	IgnoreMailtoLinks bool `default:"true" negatable:"" help:"Drop mailto links, keeping their text"`
	IgnoreTables      bool `default:"true" negatable:"" help:"Flatten tables to text"`
	IgnoreEmphasis    bool `default:"true" negatable:"" help:"Drop emphasis markers"`
}

// FilterOptions converts the flags to conversion filter options.
func (f *FetchFlags) FilterOptions() paw.FilterOptions {
	return paw.FilterOptions{
		IgnoreLinks:       f.IgnoreLinks,
		IgnoreImages:      f.IgnoreImages,
		IgnoreMailtoLinks: f.IgnoreMailtoLinks,
		IgnoreTables:      f.IgnoreTables,
		IgnoreEmphasis:    f.IgnoreEmphasis,
	}
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	FetchFlags
	URL string `arg:"" help:"Page URL"`
	Out string `short:"o" help:"Write markdown to a file instead of stdout"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	FetchFlags
	URL     string `arg:"" help:"Seed URL"`
	Depth   int    `short:"d" default:"2" help:"Maximum link depth from the seed"`
	Format  string `short:"f" default:"markdown" enum:"markdown,json" help:"Output format (markdown or json)"`
	Out     string `short:"o" help:"Write combined output to a file instead of stdout"`
	Dir     string `help:"Also write each page as a markdown file under this directory"`
	Save    bool   `help:"Archive the crawl in the database"`
	Sitemap bool   `help:"Seed the crawl from the site's sitemap"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	FetchFlags
	URL         string  `arg:"" help:"Seed URL"`
	Schema      string  `short:"s" required:"" help:"Path to a JSON schema file"`
	Model       string  `short:"m" default:"gpt-4o-mini" help:"Model to extract with (gpt-* or gemini-*)"`
	Depth       int     `short:"d" default:"0" help:"Maximum link depth from the seed"`
	Temperature float64 `default:"0.7" help:"Sampling temperature"`
	Out         string  `short:"o" help:"Write extracted JSON to a file instead of stdout"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Crawl ID"`
	Format string `short:"f" default:"markdown" enum:"markdown,json" help:"Output format (markdown or json)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Crawl ID"`
	Force bool   `help:"Confirm deletion"`
}
