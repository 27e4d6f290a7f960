package caliper

import (
	"github.com/caliperhq/caliper/pkg/types"
)

// Re-exported core types, so most consumers only import the root package.
type (
	Type            = types.Type
	Kind            = types.Kind
	Result          = types.Result
	ValidationError = types.ValidationError
	CoercionError   = types.CoercionError
	Metadata        = types.Metadata
	Format          = types.Format
	Policy          = types.Policy
)

// Sentinel errors for errors.Is checks.
var (
	ErrValidation = types.ErrValidation
	ErrCoercion   = types.ErrCoercion
)

// Coercion policies.
const (
	Lenient = types.Lenient
	Strict  = types.Strict
)

// Formats usable with WithFormat.
const (
	FormatEmail    = types.FormatEmail
	FormatURI      = types.FormatURI
	FormatUUID     = types.FormatUUID
	FormatDate     = types.FormatDate
	FormatDateTime = types.FormatDateTime
	FormatIPv4     = types.FormatIPv4
	FormatIPv6     = types.FormatIPv6

	// ISO8601 selects strict ISO 8601 checking in TimeFormat.
	ISO8601 = types.ISO8601
)

// String creates a string type.
func String(opts ...types.StringOption) *types.StringType { return types.String(opts...) }

// Email creates a string type with a fixed email pattern and format.
func Email(opts ...types.StringOption) *types.StringType { return types.Email(opts...) }

// Integer creates an integer type.
func Integer(opts ...types.NumberOption) *types.IntegerType { return types.Integer(opts...) }

// Float creates a float type. Integers are valid wherever floats are expected.
func Float(opts ...types.NumberOption) *types.FloatType { return types.Float(opts...) }

// Boolean creates a boolean type.
func Boolean() *types.BooleanType { return types.Boolean() }

// Date creates a calendar-date type.
func Date(opts ...types.TemporalOption) *types.DateType { return types.Date(opts...) }

// DateTime creates a timestamp type.
func DateTime(opts ...types.TemporalOption) *types.DateTimeType { return types.DateTime(opts...) }

// UUID creates a versioned-UUID type.
func UUID() *types.UUIDType { return types.UUID() }

// Array creates an array type with the given item type.
func Array(item types.Type, opts ...types.ArrayOption) *types.ArrayType {
	return types.Array(item, opts...)
}

// Map creates an object type from a field-name→type map.
func Map(fields map[string]types.Type, opts ...types.MapOption) *types.MapType {
	return types.Map(fields, opts...)
}

// NewObject starts building a strict object type.
func NewObject() *types.ObjectBuilder { return types.NewObject() }

// Optional wraps inner so nil validates and coerces to nil.
func Optional(inner types.Type) types.Type { return types.Optional(inner) }

// CoerceWith coerces value under an explicit policy; Type.Coerce is Lenient.
func CoerceWith(t types.Type, value any, p types.Policy) (any, error) {
	return types.CoerceWith(t, value, p)
}

// Describe returns a copy of t annotated with a description.
func Describe(t types.Type, description string) types.Type { return types.Describe(t, description) }

// WithExample returns a copy of t annotated with an example value.
func WithExample(t types.Type, example any) types.Type { return types.WithExample(t, example) }

// Constraint options, re-exported so schemas read from a single import.
var (
	MinLength  = types.MinLength
	MaxLength  = types.MaxLength
	Pattern    = types.Pattern
	WithFormat = types.WithFormat

	Minimum          = types.Minimum
	Maximum          = types.Maximum
	ExclusiveMinimum = types.ExclusiveMinimum
	ExclusiveMaximum = types.ExclusiveMaximum
	MultipleOf       = types.MultipleOf

	MinItems    = types.MinItems
	MaxItems    = types.MaxItems
	UniqueItems = types.UniqueItems

	AdditionalProperties = types.AdditionalProperties
	TimeFormat           = types.TimeFormat
)
