package openai_test

import (
	"context"
	"testing"

	oai "github.com/openai/openai-go"
	"github.com/pawhq/paw"
	"github.com/pawhq/paw/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T) *paw.Schema {
	t.Helper()
	return &paw.Schema{
		Name:        "product",
		Description: "A product listing",
		Fields: []paw.SchemaField{
			{Name: "name", Type: paw.FieldString, Description: "Product name", Required: true},
			{Name: "price", Type: paw.FieldNumber, Required: true},
			{Name: "in_stock", Type: paw.FieldBoolean},
			{Name: "variants", Type: paw.FieldArray, Items: &paw.SchemaField{
				Type: paw.FieldObject,
				Fields: []paw.SchemaField{
					{Name: "sku", Type: paw.FieldString, Required: true},
				},
			}},
		},
	}
}

func TestBuildSchema(t *testing.T) {
	t.Parallel()

	m := openai.BuildSchema(testSchema(t))
	assert.Equal(t, "object", m["type"])
	assert.Equal(t, "A product listing", m["description"])
	assert.Equal(t, []string{"name", "price"}, m["required"])

	properties, ok := m["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, properties, 4)

	name, ok := properties["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, "Product name", name["description"])

	price, ok := properties["price"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "number", price["type"])

	variants, ok := properties["variants"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", variants["type"])
	items, ok := variants["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", items["type"])
	assert.Equal(t, []string{"sku"}, items["required"])
}

func TestBuildResponseFormat(t *testing.T) {
	t.Parallel()

	format := openai.BuildResponseFormat(testSchema(t))
	assert.Equal(t, oai.ResponseFormatJSONSchemaTypeJSONSchema, format.Type.Value)
	assert.Equal(t, "product", format.JSONSchema.Value.Name.Value)
	assert.Equal(t, "A product listing", format.JSONSchema.Value.Description.Value)

	schema, ok := format.JSONSchema.Value.Schema.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", schema["type"])
}

func TestExtractor_ExtractSchema_Validation(t *testing.T) {
	t.Parallel()

	e := openai.NewExtractor(nil)

	t.Run("EmptyContent", func(t *testing.T) {
		t.Parallel()
		_, err := e.ExtractSchema(context.Background(), "", testSchema(t))
		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})

	t.Run("NilSchema", func(t *testing.T) {
		t.Parallel()
		_, err := e.ExtractSchema(context.Background(), "# Content", nil)
		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})

	t.Run("InvalidSchema", func(t *testing.T) {
		t.Parallel()
		_, err := e.ExtractSchema(context.Background(), "# Content", &paw.Schema{Name: "x"})
		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})
}
