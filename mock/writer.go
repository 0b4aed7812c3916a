package mock

import (
	"context"

	"github.com/pawhq/paw"
)

var _ paw.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of paw.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *paw.Page) error
}

func (w *PageWriter) WritePage(ctx context.Context, page *paw.Page) error {
	return w.WritePageFn(ctx, page)
}
