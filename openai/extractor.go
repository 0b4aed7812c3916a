// Package openai implements schema extraction using OpenAI structured
// output via the chat completions API.
package openai

import (
	"context"
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/pawhq/paw"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultTemperature matches the sampling temperature used for extraction
// unless overridden.
const DefaultTemperature = 0.7

const systemPrompt = "Extract the requested information from the " +
	"following markdown content. Respond only with data found in the " +
	"content; leave optional fields out when the content does not " +
	"provide them."

// Ensure Extractor implements paw.SchemaExtractor at compile time.
var _ paw.SchemaExtractor = (*Extractor)(nil)

// Extractor implements paw.SchemaExtractor using the OpenAI API.
type Extractor struct {
	client      *openai.Client
	model       string
	temperature float64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithModel sets the model identifier. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(e *Extractor) {
		if model != "" {
			e.model = model
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(e *Extractor) {
		e.temperature = t
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *openai.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client:      client,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractSchema sends content and schema to OpenAI and returns data
// conforming to the schema.
func (e *Extractor) ExtractSchema(ctx context.Context, content string, schema *paw.Schema) (*paw.Extraction, error) {
	if content == "" {
		return nil, paw.Errorf(paw.EINVALID, "content required")
	}
	if schema == nil {
		return nil, paw.Errorf(paw.EINVALID, "schema required")
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	chat, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(content),
		}),
		Model:          openai.F(openai.ChatModel(e.model)),
		Temperature:    openai.Float(e.temperature),
		ResponseFormat: openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](BuildResponseFormat(schema)),
	})
	if err != nil {
		return nil, err
	}
	if len(chat.Choices) == 0 {
		return nil, paw.Errorf(paw.EINTERNAL, "openai returned no choices")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &data); err != nil {
		return nil, paw.Errorf(paw.EINVALID, "model returned malformed JSON: %v", err)
	}
	if err := schema.ValidateData(data); err != nil {
		return nil, err
	}

	return &paw.Extraction{
		SchemaName: schema.Name,
		Model:      e.model,
		Data:       data,
	}, nil
}

// BuildResponseFormat returns the json_schema response format for a
// structured extraction call.
func BuildResponseFormat(schema *paw.Schema) openai.ResponseFormatJSONSchemaParam {
	return openai.ResponseFormatJSONSchemaParam{
		Type: openai.F(openai.ResponseFormatJSONSchemaTypeJSONSchema),
		JSONSchema: openai.F(openai.ResponseFormatJSONSchemaJSONSchemaParam{
			Name:        openai.String(schema.Name),
			Description: openai.String(schema.Description),
			Schema:      openai.F[any](BuildSchema(schema)),
			Strict:      openai.Bool(false),
		}),
	}
}

// BuildSchema converts a paw.Schema into a JSON Schema document.
func BuildSchema(schema *paw.Schema) map[string]any {
	return buildObjectSchema(schema.Description, schema.Fields)
}

func buildObjectSchema(description string, fields []paw.SchemaField) map[string]any {
	properties := make(map[string]any, len(fields))
	required := []string{}
	for _, f := range fields {
		properties[f.Name] = buildFieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	obj := map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
	if description != "" {
		obj["description"] = description
	}
	return obj
}

func buildFieldSchema(f paw.SchemaField) map[string]any {
	switch f.Type {
	case paw.FieldArray:
		m := map[string]any{
			"type":  "array",
			"items": buildFieldSchema(*f.Items),
		}
		if f.Description != "" {
			m["description"] = f.Description
		}
		return m
	case paw.FieldObject:
		return buildObjectSchema(f.Description, f.Fields)
	default:
		m := map[string]any{"type": string(f.Type)}
		if f.Description != "" {
			m["description"] = f.Description
		}
		return m
	}
}
