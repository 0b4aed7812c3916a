package paw

import (
	"context"
	"encoding/json"
	"math"
)

// FieldType enumerates the value types a schema field can declare.
type FieldType string

// Supported schema field types.
const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldInteger FieldType = "integer"
	FieldBoolean FieldType = "boolean"
	FieldArray   FieldType = "array"
	FieldObject  FieldType = "object"
)

// SchemaField describes one field of an extraction schema.
type SchemaField struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required,omitempty"`

	// Items declares the element type for array fields.
	Items *SchemaField `json:"items,omitempty"`

	// Fields declares nested fields for object fields.
	Fields []SchemaField `json:"fields,omitempty"`
}

// Schema is a caller-supplied type description that model output must
// conform to. Schemas are read-only inputs and never mutated.
type Schema struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Fields      []SchemaField `json:"fields"`
}

// ParseSchema decodes a schema from its JSON representation and validates
// its structure.
func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, Errorf(EINVALID, "malformed schema: %v", err)
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &schema, nil
}

// Validate returns an error if the schema itself is malformed.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "schema name required")
	}
	if len(s.Fields) == 0 {
		return Errorf(EINVALID, "schema requires at least one field")
	}
	return validateFields(s.Fields)
}

func validateFields(fields []SchemaField) error {
	for _, f := range fields {
		if f.Name == "" {
			return Errorf(EINVALID, "schema field name required")
		}
		if err := validateType(f); err != nil {
			return err
		}
	}
	return nil
}

// validateType checks a field's type declaration. Array items are plain
// type descriptors and carry no name of their own.
func validateType(f SchemaField) error {
	switch f.Type {
	case FieldString, FieldNumber, FieldInteger, FieldBoolean:
	case FieldArray:
		if f.Items == nil {
			return Errorf(EINVALID, "array field %q requires items", f.Name)
		}
		if err := validateType(*f.Items); err != nil {
			return err
		}
	case FieldObject:
		if len(f.Fields) == 0 {
			return Errorf(EINVALID, "object field %q requires nested fields", f.Name)
		}
		if err := validateFields(f.Fields); err != nil {
			return err
		}
	default:
		return Errorf(EINVALID, "field %q has unknown type %q", f.Name, f.Type)
	}
	return nil
}

// ValidateData checks that model output conforms to the schema: required
// fields are present and every present value matches its declared type.
func (s *Schema) ValidateData(data map[string]any) error {
	return validateObject(s.Fields, data)
}

func validateObject(fields []SchemaField, data map[string]any) error {
	for _, f := range fields {
		value, ok := data[f.Name]
		if !ok || value == nil {
			if f.Required {
				return Errorf(EINVALID, "missing required field %q", f.Name)
			}
			continue
		}
		if err := validateValue(f, value); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(f SchemaField, value any) error {
	switch f.Type {
	case FieldString:
		if _, ok := value.(string); !ok {
			return Errorf(EINVALID, "field %q: expected string, got %T", f.Name, value)
		}
	case FieldNumber:
		if _, ok := value.(float64); !ok {
			return Errorf(EINVALID, "field %q: expected number, got %T", f.Name, value)
		}
	case FieldInteger:
		// JSON numbers decode as float64; accept only whole values.
		n, ok := value.(float64)
		if !ok || n != math.Trunc(n) {
			return Errorf(EINVALID, "field %q: expected integer, got %v", f.Name, value)
		}
	case FieldBoolean:
		if _, ok := value.(bool); !ok {
			return Errorf(EINVALID, "field %q: expected boolean, got %T", f.Name, value)
		}
	case FieldArray:
		items, ok := value.([]any)
		if !ok {
			return Errorf(EINVALID, "field %q: expected array, got %T", f.Name, value)
		}
		for _, item := range items {
			if err := validateValue(*f.Items, item); err != nil {
				return err
			}
		}
	case FieldObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return Errorf(EINVALID, "field %q: expected object, got %T", f.Name, value)
		}
		if err := validateObject(f.Fields, obj); err != nil {
			return err
		}
	}
	return nil
}

// Extraction is the schema-conforming result of an extract operation.
type Extraction struct {
	SchemaName string         `json:"schemaName"`
	SourceURL  string         `json:"sourceUrl"`
	Model      string         `json:"model"`
	Data       map[string]any `json:"data"`
}

// SchemaExtractor maps markdown content onto a schema using a language
// model.
type SchemaExtractor interface {
	// ExtractSchema sends content and schema to the model and returns data
	// conforming to the schema. Returns EINVALID if the model output fails
	// schema validation.
	ExtractSchema(ctx context.Context, content string, schema *Schema) (*Extraction, error)
}
