package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONSchemaEmission(t *testing.T) {
	t.Run("String With Constraints", func(t *testing.T) {
		typ := String(MinLength(1), MaxLength(10), Pattern(`^[a-z]+$`), WithFormat(FormatEmail))
		assert.Equal(t, map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 10,
			"pattern":   `^[a-z]+$`,
			"format":    "email",
		}, typ.JSONSchema())
	})

	t.Run("Integer Bounds Emit As Integers", func(t *testing.T) {
		typ := Integer(Minimum(0), Maximum(120))
		assert.Equal(t, map[string]any{
			"type":    "integer",
			"minimum": int64(0),
			"maximum": int64(120),
		}, typ.JSONSchema())
	})

	t.Run("Float Bounds Emit As Numbers", func(t *testing.T) {
		typ := Float(Minimum(0.5), MultipleOf(0.25))
		assert.Equal(t, map[string]any{
			"type":       "number",
			"minimum":    0.5,
			"multipleOf": 0.25,
		}, typ.JSONSchema())
	})

	t.Run("Boolean", func(t *testing.T) {
		assert.Equal(t, map[string]any{"type": "boolean"}, Boolean().JSONSchema())
	})

	t.Run("Temporal Formats", func(t *testing.T) {
		assert.Equal(t, map[string]any{"type": "string", "format": "date"}, Date().JSONSchema())
		assert.Equal(t, map[string]any{"type": "string", "format": "date-time"}, DateTime().JSONSchema())
	})

	t.Run("Array", func(t *testing.T) {
		typ := Array(String(), MinItems(1), MaxItems(5), UniqueItems())
		assert.Equal(t, map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    1,
			"maxItems":    5,
			"uniqueItems": true,
		}, typ.JSONSchema())
	})

	t.Run("Object", func(t *testing.T) {
		typ := Map(map[string]Type{"n": Integer(Minimum(0))})
		assert.Equal(t, map[string]any{
			"type": "object",
			"properties": map[string]any{
				"n": map[string]any{"type": "integer", "minimum": int64(0)},
			},
			"required":             []string{"n"},
			"additionalProperties": true,
		}, typ.JSONSchema())
	})

	t.Run("Optional Fields Leave Required List", func(t *testing.T) {
		typ := Map(map[string]Type{
			"name": String(),
			"age":  Optional(Integer()),
		})
		schema := typ.JSONSchema()
		assert.Equal(t, []string{"name"}, schema["required"])
	})

	t.Run("Metadata Merged In", func(t *testing.T) {
		typ := Describe(WithExample(Integer(), 30), "an age")
		assert.Equal(t, map[string]any{
			"type":        "integer",
			"description": "an age",
			"example":     30,
		}, typ.JSONSchema())
	})

	t.Run("Emission Is Deterministic", func(t *testing.T) {
		typ := Map(map[string]Type{"n": Integer(Minimum(0))})
		first := typ.JSONSchema()
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, typ.JSONSchema())
		}
	})
}

func TestUUIDSchemaCarriesPattern(t *testing.T) {
	schema := UUID().JSONSchema()
	assert.Equal(t, "string", schema["type"])
	assert.Equal(t, "uuid", schema["format"])
	assert.NotEmpty(t, schema["pattern"])
}
