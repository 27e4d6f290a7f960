package types

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// numericConstraints holds the bounds shared by IntegerType and FloatType.
type numericConstraints struct {
	minimum          *float64
	maximum          *float64
	exclusiveMinimum *float64
	exclusiveMaximum *float64
	multipleOf       *float64
}

// NumberOption configures an IntegerType or FloatType at construction time.
type NumberOption func(*numericConstraints)

// Minimum constrains values to be >= v.
func Minimum(v float64) NumberOption {
	return func(c *numericConstraints) { c.minimum = &v }
}

// Maximum constrains values to be <= v.
func Maximum(v float64) NumberOption {
	return func(c *numericConstraints) { c.maximum = &v }
}

// ExclusiveMinimum constrains values to be > v.
func ExclusiveMinimum(v float64) NumberOption {
	return func(c *numericConstraints) { c.exclusiveMinimum = &v }
}

// ExclusiveMaximum constrains values to be < v.
func ExclusiveMaximum(v float64) NumberOption {
	return func(c *numericConstraints) { c.exclusiveMaximum = &v }
}

// MultipleOf constrains values to be an exact multiple of v.
func MultipleOf(v float64) NumberOption {
	return func(c *numericConstraints) { c.multipleOf = &v }
}

func (c *numericConstraints) check(num float64) []*ValidationError {
	var errs []*ValidationError
	add := func(format string, args ...any) {
		errs = append(errs, &ValidationError{Reason: fmt.Sprintf(format, args...), Value: num})
	}
	if c.minimum != nil && num < *c.minimum {
		add("value %v is below minimum %v", num, *c.minimum)
	}
	if c.maximum != nil && num > *c.maximum {
		add("value %v is above maximum %v", num, *c.maximum)
	}
	if c.exclusiveMinimum != nil && num <= *c.exclusiveMinimum {
		add("value %v must be greater than %v", num, *c.exclusiveMinimum)
	}
	if c.exclusiveMaximum != nil && num >= *c.exclusiveMaximum {
		add("value %v must be less than %v", num, *c.exclusiveMaximum)
	}
	if c.multipleOf != nil && *c.multipleOf != 0 {
		rem := math.Abs(math.Mod(num, *c.multipleOf))
		if rem > 1e-9 && math.Abs(rem-math.Abs(*c.multipleOf)) > 1e-9 {
			add("value %v is not a multiple of %v", num, *c.multipleOf)
		}
	}
	return errs
}

func (c *numericConstraints) schemaFields(s map[string]any, integral bool) {
	put := func(key string, v float64) {
		if integral && v == math.Trunc(v) {
			s[key] = int64(v)
		} else {
			s[key] = v
		}
	}
	if c.minimum != nil {
		put("minimum", *c.minimum)
	}
	if c.maximum != nil {
		put("maximum", *c.maximum)
	}
	if c.exclusiveMinimum != nil {
		put("exclusiveMinimum", *c.exclusiveMinimum)
	}
	if c.exclusiveMaximum != nil {
		put("exclusiveMaximum", *c.exclusiveMaximum)
	}
	if c.multipleOf != nil {
		put("multipleOf", *c.multipleOf)
	}
}

// numericValue converts any native numeric value to float64.
func numericValue(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// IntegerType validates and coerces integer values. Coercion normalizes to int64.
type IntegerType struct {
	constraints numericConstraints
	meta        Metadata
}

// Integer creates an integer type.
func Integer(opts ...NumberOption) *IntegerType {
	t := &IntegerType{}
	for _, o := range opts {
		o(&t.constraints)
	}
	return t
}

func (t *IntegerType) Name() string       { return "integer" }
func (t *IntegerType) Kind() Kind         { return KindInteger }
func (t *IntegerType) Required() bool     { return true }
func (t *IntegerType) Metadata() Metadata { return t.meta }

func (t *IntegerType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *IntegerType) Validate(value any) Result     { return runValidate(t, value) }
func (t *IntegerType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *IntegerType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *IntegerType) checkType(v any) []*ValidationError {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float32:
		if float64(n) == math.Trunc(float64(n)) {
			// Whole floats come out of JSON decoding; treating them as
			// integers keeps JSON-decoded input validatable.
			return nil
		}
		return []*ValidationError{{Reason: "expected integer, got float with a fractional part", Value: v}}
	case float64:
		if n == math.Trunc(n) {
			return nil
		}
		return []*ValidationError{{Reason: "expected integer, got float with a fractional part", Value: v}}
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return nil
		}
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) {
			return nil
		}
		return []*ValidationError{{Reason: fmt.Sprintf("expected integer, got %q", n.String()), Value: v}}
	default:
		return []*ValidationError{{Reason: fmt.Sprintf("expected integer, got %T", v), Value: v}}
	}
}

func (t *IntegerType) checkConstraints(v any) []*ValidationError {
	num, ok := numericValue(v)
	if !ok {
		return nil
	}
	return t.constraints.check(num)
}

func (t *IntegerType) coerceValue(v any, p Policy) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float32:
		return t.coerceFloat(float64(n), v, p)
	case float64:
		return t.coerceFloat(n, v, p)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, newCoercionError(v, "integer", fmt.Sprintf("cannot parse %q as an integer", n.String()), err)
		}
		return t.coerceFloat(f, v, p)
	case bool:
		if p == Strict {
			return nil, newCoercionError(v, "integer", "boolean coercion is disabled under the strict policy", nil)
		}
		if n {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, newCoercionError(v, "integer", fmt.Sprintf("cannot parse %q as an integer", n), err)
		}
		if p == Strict {
			return nil, newCoercionError(v, "integer", fmt.Sprintf("%q is not an integer literal", n), nil)
		}
		return int64(f), nil
	default:
		return nil, newCoercionError(v, "integer", fmt.Sprintf("unsupported type %T", v), nil)
	}
}

// coerceFloat truncates toward zero under the lenient policy.
func (t *IntegerType) coerceFloat(f float64, original any, p Policy) (any, error) {
	if f != math.Trunc(f) && p == Strict {
		return nil, newCoercionError(original, "integer", "float has a fractional part", nil)
	}
	return int64(f), nil
}

func (t *IntegerType) schemaFragment() map[string]any {
	s := map[string]any{"type": "integer"}
	t.constraints.schemaFields(s, true)
	return s
}

// FloatType validates and coerces floating-point values. Integers are valid
// wherever a float is expected, but not vice versa. Coercion normalizes to float64.
type FloatType struct {
	constraints numericConstraints
	meta        Metadata
}

// Float creates a float type.
func Float(opts ...NumberOption) *FloatType {
	t := &FloatType{}
	for _, o := range opts {
		o(&t.constraints)
	}
	return t
}

func (t *FloatType) Name() string       { return "float" }
func (t *FloatType) Kind() Kind         { return KindFloat }
func (t *FloatType) Required() bool     { return true }
func (t *FloatType) Metadata() Metadata { return t.meta }

func (t *FloatType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *FloatType) Validate(value any) Result     { return runValidate(t, value) }
func (t *FloatType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *FloatType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *FloatType) checkType(v any) []*ValidationError {
	switch n := v.(type) {
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case json.Number:
		if _, err := n.Float64(); err == nil {
			return nil
		}
		return []*ValidationError{{Reason: fmt.Sprintf("expected number, got %q", n.String()), Value: v}}
	default:
		return []*ValidationError{{Reason: fmt.Sprintf("expected number, got %T", v), Value: v}}
	}
}

func (t *FloatType) checkConstraints(v any) []*ValidationError {
	num, ok := numericValue(v)
	if !ok {
		return nil
	}
	return t.constraints.check(num)
}

func (t *FloatType) coerceValue(v any, _ Policy) (any, error) {
	if num, ok := numericValue(v); ok {
		return num, nil
	}
	switch n := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, newCoercionError(v, "float", fmt.Sprintf("cannot parse %q as a number", n), err)
		}
		return f, nil
	default:
		return nil, newCoercionError(v, "float", fmt.Sprintf("unsupported type %T", v), nil)
	}
}

func (t *FloatType) schemaFragment() map[string]any {
	s := map[string]any{"type": "number"}
	t.constraints.schemaFields(s, false)
	return s
}
