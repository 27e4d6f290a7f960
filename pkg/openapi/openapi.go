// Package openapi projects type schemas into kin-openapi's typed model, so
// the plain fragments emitted by pkg/types can be embedded in a larger
// OpenAPI document without manual conversion.
package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/caliperhq/caliper/pkg/types"
)

// Schema converts t's JSON Schema fragment into a typed *openapi3.Schema.
func Schema(t types.Type) (*openapi3.Schema, error) {
	data, err := json.Marshal(t.JSONSchema())
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal schema fragment for %s: %w", t.Name(), err)
	}
	var schema openapi3.Schema
	if err := schema.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("openapi: build schema for %s: %w", t.Name(), err)
	}
	return &schema, nil
}

// SchemaRef wraps Schema in an inline (ref-less) *openapi3.SchemaRef, the
// form most kin-openapi document fields expect.
func SchemaRef(t types.Type) (*openapi3.SchemaRef, error) {
	schema, err := Schema(t)
	if err != nil {
		return nil, err
	}
	return openapi3.NewSchemaRef("", schema), nil
}
