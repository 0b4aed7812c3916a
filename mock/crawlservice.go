package mock

import (
	"context"

	"github.com/pawhq/paw"
)

var _ paw.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of paw.CrawlService.
type CrawlService struct {
	CreateCrawlFn   func(ctx context.Context, crawl *paw.Crawl) error
	FindCrawlByIDFn func(ctx context.Context, id string) (*paw.Crawl, error)
	FindCrawlsFn    func(ctx context.Context, filter paw.CrawlFilter) ([]*paw.Crawl, error)
	DeleteCrawlFn   func(ctx context.Context, id string) error
}

func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *paw.Crawl) error {
	return s.CreateCrawlFn(ctx, crawl)
}

func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*paw.Crawl, error) {
	return s.FindCrawlByIDFn(ctx, id)
}

func (s *CrawlService) FindCrawls(ctx context.Context, filter paw.CrawlFilter) ([]*paw.Crawl, error) {
	return s.FindCrawlsFn(ctx, filter)
}

func (s *CrawlService) DeleteCrawl(ctx context.Context, id string) error {
	return s.DeleteCrawlFn(ctx, id)
}
