// Package types implements a composable runtime type system: schemas are
// built as immutable trees of type values, then used to validate, coerce,
// and describe arbitrary input.
//
// Validation is two-phase and advisory: a type-shape check followed by a
// constraint check, both of which always run, so a single Validate call
// reports every problem with the input. Nothing panics or errors during
// validation; problems come back as data in a Result.
//
// Coercion is transactional: the first conversion that cannot succeed
// aborts with a *CoercionError. The default policy keeps a handful of
// permissive fallbacks (scalar boxing for arrays, truthiness for booleans,
// float truncation for integers); CoerceWith with the Strict policy turns
// each of them into an error.
//
// Building a schema:
//
//	user := types.Map(map[string]types.Type{
//	    "name": types.String(types.MinLength(1)),
//	    "age":  types.Optional(types.Integer(types.Minimum(0))),
//	})
//
//	result := user.Validate(map[string]any{"name": "", "age": -5})
//	// result.Valid == false; result.Errors lists both problems
//
//	coerced, err := user.Coerce(map[string]any{"name": "Ana", "age": "30"})
//	// coerced: map[string]any{"name": "Ana", "age": int64(30)}
//
// Every type also emits a plain JSON Schema fragment through JSONSchema,
// directly embeddable into a larger OpenAPI or JSON Schema document.
//
// Type values are immutable after construction and safe for concurrent use;
// a schema assigned to a package-level variable can validate many requests
// at once without locking.
package types
