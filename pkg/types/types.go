package types

// Kind identifies one of the closed set of type kinds.
// Consumers can switch exhaustively on it instead of type-asserting.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDate
	KindDateTime
	KindUUID
	KindArray
	KindMap
	KindObject
	KindOptional
)

// String returns the kind's canonical name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindUUID:
		return "uuid"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// Metadata carries descriptive annotations that never affect validation
// or coercion. It is attached with Type.WithMetadata.
type Metadata struct {
	Description string
	Example     any
}

func (m Metadata) merge(other Metadata) Metadata {
	if other.Description != "" {
		m.Description = other.Description
	}
	if other.Example != nil {
		m.Example = other.Example
	}
	return m
}

// Policy selects how far coercion is allowed to bend an input to fit.
//
// Lenient keeps the historical permissive fallbacks: booleans accept any
// leftover value as truthy, arrays box a bare scalar into a single-element
// slice, integers truncate fractional numbers. Strict turns each of those
// fallbacks into a *CoercionError.
type Policy int

const (
	Lenient Policy = iota
	Strict
)

// Type is the contract shared by every schema node.
//
// A Type instance is immutable after construction and holds no internal
// state across calls, so a single schema value can validate and coerce
// concurrently from any number of goroutines.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "[integer]").
	Name() string
	// Kind returns the type's kind for exhaustive dispatch.
	Kind() Kind
	// Required reports whether nil is rejected. Only Optional returns false.
	Required() bool
	// Validate checks value against the type and its constraints.
	// It never panics and collects every problem it can find.
	Validate(value any) Result
	// Coerce converts value into the type's native representation under the
	// Lenient policy. Conversion failures return a *CoercionError.
	Coerce(value any) (any, error)
	// JSONSchema returns the type as a plain JSON Schema fragment.
	JSONSchema() map[string]any
	// Metadata returns the descriptive annotations attached to the type.
	Metadata() Metadata
	// WithMetadata returns a copy of the type with md merged in.
	WithMetadata(md Metadata) Type
}

// checker is the internal dispatch contract every in-package type kind
// implements. Validate/Coerce/JSONSchema are thin wrappers over these four
// hooks so the nil/required orchestration lives in exactly one place.
type checker interface {
	Type
	// checkType verifies the value has the right native shape.
	checkType(v any) []*ValidationError
	// checkConstraints verifies constraints, assuming a value of the wrong
	// shape produces no constraint errors (the shape error already covers it).
	checkConstraints(v any) []*ValidationError
	// coerceValue converts a non-nil value; nil handling is done by runCoerce.
	coerceValue(v any, p Policy) (any, error)
	// schemaFragment returns the type and constraint fields, without metadata.
	schemaFragment() map[string]any
}

const requiredNilMsg = "value is required but got nil"

func runValidate(t checker, v any) Result {
	if v == nil {
		if t.Required() {
			return newResult([]*ValidationError{{Reason: requiredNilMsg}})
		}
		return newResult(nil)
	}
	// Both phases always run so a caller sees the fullest diagnostic in one pass.
	errs := t.checkType(v)
	errs = append(errs, t.checkConstraints(v)...)
	return newResult(errs)
}

func runCoerce(t checker, v any, p Policy) (any, error) {
	if v == nil {
		if t.Required() {
			return nil, newCoercionError(nil, t.Name(), requiredNilMsg, nil)
		}
		return nil, nil
	}
	return t.coerceValue(v, p)
}

// CoerceWith coerces value with an explicit policy. Type.Coerce is
// equivalent to CoerceWith with the Lenient policy.
func CoerceWith(t Type, value any, p Policy) (any, error) {
	if c, ok := t.(checker); ok {
		return runCoerce(c, value, p)
	}
	return t.Coerce(value)
}

func buildSchema(t checker) map[string]any {
	s := t.schemaFragment()
	md := t.Metadata()
	if md.Description != "" {
		s["description"] = md.Description
	}
	if md.Example != nil {
		s["example"] = md.Example
	}
	return s
}

// Describe returns a copy of t annotated with a description.
func Describe(t Type, description string) Type {
	return t.WithMetadata(Metadata{Description: description})
}

// WithExample returns a copy of t annotated with an example value.
func WithExample(t Type, example any) Type {
	return t.WithMetadata(Metadata{Example: example})
}
