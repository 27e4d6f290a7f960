// Package derive infers object schemas from example data, Go structs, and
// JSON-Schema documents.
//
// Derivation is a convenience for pinning down the shape of data you already
// have; hand-written schemas stay the source of truth for anything with real
// constraints, since inference only picks type kinds, never bounds.
//
//	schema, err := derive.FromExample(map[string]any{
//	    "name":   "Ana",
//	    "age":    30,
//	    "tags":   []any{"a", "b"},
//	    "active": true,
//	})
//
// Malformed or unsupported sources fail immediately with an error; no
// partial schema is ever returned.
package derive
