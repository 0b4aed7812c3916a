package mock

import (
	"context"

	"github.com/pawhq/paw"
)

var _ paw.SchemaExtractor = (*SchemaExtractor)(nil)

// SchemaExtractor is a mock implementation of paw.SchemaExtractor.
type SchemaExtractor struct {
	ExtractSchemaFn func(ctx context.Context, content string, schema *paw.Schema) (*paw.Extraction, error)
}

func (e *SchemaExtractor) ExtractSchema(ctx context.Context, content string, schema *paw.Schema) (*paw.Extraction, error) {
	return e.ExtractSchemaFn(ctx, content, schema)
}
