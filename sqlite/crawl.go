package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawhq/paw"
)

// Compile-time interface verification.
var _ paw.CrawlService = (*CrawlService)(nil)

// CrawlService implements paw.CrawlService using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

// CreateCrawl persists a crawl and its pages.
func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *paw.Crawl) error {
	if err := crawl.Validate(); err != nil {
		return err
	}

	crawl.ID = uuid.New().String()
	crawl.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, seed_url, max_depth, created_at)
		VALUES (?, ?, ?, ?)
	`, crawl.ID, crawl.SeedURL, crawl.MaxDepth, crawl.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, page := range crawl.Pages {
		if err := page.Validate(); err != nil {
			return err
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO pages (id, crawl_id, url, title, content, content_hash, depth, position, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), crawl.ID, page.URL, page.Title, page.Content, page.ContentHash,
			page.Depth, page.Position, page.FetchedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindCrawlByID retrieves a crawl with its pages in visitation order.
func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*paw.Crawl, error) {
	var crawl paw.Crawl
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, max_depth, created_at
		FROM crawls
		WHERE id = ?
	`, id).Scan(&crawl.ID, &crawl.SeedURL, &crawl.MaxDepth, &createdAt)

	if err == sql.ErrNoRows {
		return nil, paw.Errorf(paw.ENOTFOUND, "crawl not found")
	}
	if err != nil {
		return nil, err
	}

	if crawl.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	if crawl.Pages, err = s.findPages(ctx, crawl.ID); err != nil {
		return nil, err
	}

	return &crawl, nil
}

// FindCrawls retrieves crawls matching the filter, without pages.
func (s *CrawlService) FindCrawls(ctx context.Context, filter paw.CrawlFilter) ([]*paw.Crawl, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, seed_url, max_depth, created_at FROM crawls WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SeedURL != nil {
		query.WriteString(" AND seed_url = ?")
		args = append(args, *filter.SeedURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crawls []*paw.Crawl
	for rows.Next() {
		var crawl paw.Crawl
		var createdAt string

		if err := rows.Scan(&crawl.ID, &crawl.SeedURL, &crawl.MaxDepth, &createdAt); err != nil {
			return nil, err
		}
		if crawl.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		crawls = append(crawls, &crawl)
	}

	return crawls, rows.Err()
}

// DeleteCrawl permanently removes a crawl and its pages.
func (s *CrawlService) DeleteCrawl(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM crawls WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return paw.Errorf(paw.ENOTFOUND, "crawl not found")
	}

	return nil
}

// findPages retrieves all pages for a crawl ordered by position.
func (s *CrawlService) findPages(ctx context.Context, crawlID string) ([]*paw.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, content, content_hash, depth, position, fetched_at
		FROM pages
		WHERE crawl_id = ?
		ORDER BY position ASC
	`, crawlID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*paw.Page
	for rows.Next() {
		var page paw.Page
		var fetchedAt string

		if err := rows.Scan(&page.URL, &page.Title, &page.Content, &page.ContentHash,
			&page.Depth, &page.Position, &fetchedAt); err != nil {
			return nil, err
		}
		if page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}
