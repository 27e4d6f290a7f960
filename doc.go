/*
Package caliper is a composable runtime type system: schemas are immutable
trees of type values used to validate, coerce, and describe arbitrary input.

It is designed as the data-contract layer of a larger system: an HTTP
adapter validates request payloads against a shared schema constant, a
handler coerces raw query/JSON input into native values, and a spec
generator embeds the emitted JSON Schema fragments into an OpenAPI
document. None of those layers live here; this module only implements the
contract they consume.

# Concept

A schema is built by composing type constructors:

	user := caliper.Map(map[string]caliper.Type{
	    "name": caliper.String(caliper.MinLength(1)),
	    "age":  caliper.Optional(caliper.Integer(caliper.Minimum(0))),
	})

Validation is advisory and exhaustive: it never panics, and it reports
every problem it finds in one pass, with field- and index-qualified
messages for composite types.

	result := user.Validate(map[string]any{"name": "", "age": -5})
	// result.Valid == false
	// result.Errors:
	//   field "age": value -5 is below minimum 0
	//   field "name": string length 0 is below minimum length 1

Coercion is transactional: the first conversion that cannot succeed aborts
with a *CoercionError, which callers typically translate into a
client-facing validation failure.

	coerced, err := user.Coerce(map[string]any{"name": "Ana", "age": "30"})
	// coerced: map[string]any{"name": "Ana", "age": int64(30)}

The default coercion policy keeps a handful of permissive fallbacks
(truthiness for booleans, scalar boxing for arrays, float truncation for
integers); CoerceWith with the Strict policy turns each into an error.

# Derived schemas and OpenAPI

Subpackages round out the workflow: pkg/derive infers schemas from example
data, Go structs, and JSON-Schema documents; pkg/openapi projects a type's
JSON Schema fragment into kin-openapi's typed model.

Type values are immutable after construction and safe for concurrent use,
so a schema assigned to a package-level variable can validate many
requests at once without locking.
*/
package caliper
