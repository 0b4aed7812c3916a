// Package gemini implements schema extraction using Google Gemini
// structured output.
package gemini

import (
	"context"
	"encoding/json"

	"github.com/pawhq/paw"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature matches the sampling temperature used for extraction
// unless overridden.
const DefaultTemperature = 0.7

const systemInstruction = "Extract the requested information from the " +
	"following markdown content. Respond only with data found in the " +
	"content; leave optional fields out when the content does not " +
	"provide them."

// Ensure Extractor implements paw.SchemaExtractor at compile time.
var _ paw.SchemaExtractor = (*Extractor)(nil)

// Extractor implements paw.SchemaExtractor using the Gemini API.
type Extractor struct {
	client      *genai.Client
	model       string
	temperature float32
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
func WithTemperature(t float32) Option {
	return func(e *Extractor) {
		e.temperature = t
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client, opts ...Option) *Extractor {
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

// ExtractSchema sends content and schema to Gemini and returns data
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

	config := BuildConfig(schema, e.temperature)

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: content}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, paw.Errorf(paw.EINTERNAL, "gemini returned nil result")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(result.Text()), &data); err != nil {
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

// BuildConfig returns the GenerateContentConfig for a structured
// extraction call.
func BuildConfig(schema *paw.Schema, temperature float32) *genai.GenerateContentConfig {
	temp := temperature
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   BuildSchema(schema),
	}
}

// BuildSchema converts a paw.Schema into the Gemini response schema.
func BuildSchema(schema *paw.Schema) *genai.Schema {
	return buildObjectSchema(schema.Description, schema.Fields)
}

func buildObjectSchema(description string, fields []paw.SchemaField) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(fields))
	var required []string
	for _, f := range fields {
		properties[f.Name] = buildFieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: description,
		Properties:  properties,
		Required:    required,
	}
}

func buildFieldSchema(f paw.SchemaField) *genai.Schema {
	switch f.Type {
	case paw.FieldString:
		return &genai.Schema{Type: genai.TypeString, Description: f.Description}
	case paw.FieldNumber:
		return &genai.Schema{Type: genai.TypeNumber, Description: f.Description}
	case paw.FieldInteger:
		return &genai.Schema{Type: genai.TypeInteger, Description: f.Description}
	case paw.FieldBoolean:
		return &genai.Schema{Type: genai.TypeBoolean, Description: f.Description}
	case paw.FieldArray:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: f.Description,
			Items:       buildFieldSchema(*f.Items),
		}
	case paw.FieldObject:
		return buildObjectSchema(f.Description, f.Fields)
	default:
		return &genai.Schema{Type: genai.TypeString, Description: f.Description}
	}
}
