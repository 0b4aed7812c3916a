package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pawhq/paw"
)

// Ensure LoggingSchemaExtractor implements paw.SchemaExtractor.
var _ paw.SchemaExtractor = (*LoggingSchemaExtractor)(nil)

// LoggingSchemaExtractor wraps a SchemaExtractor with debug logging.
type LoggingSchemaExtractor struct {
	next   paw.SchemaExtractor
	logger *slog.Logger
}

// NewLoggingSchemaExtractor creates a new LoggingSchemaExtractor.
func NewLoggingSchemaExtractor(next paw.SchemaExtractor, logger *slog.Logger) *LoggingSchemaExtractor {
	return &LoggingSchemaExtractor{next: next, logger: logger}
}

// ExtractSchema delegates to the wrapped extractor and logs the operation.
func (e *LoggingSchemaExtractor) ExtractSchema(ctx context.Context, content string, schema *paw.Schema) (extraction *paw.Extraction, err error) {
	defer func(begin time.Time) {
		name := ""
		if schema != nil {
			name = schema.Name
		}
		e.logger.Info("schema extraction",
			"schema", name,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractSchema(ctx, content, schema)
}
