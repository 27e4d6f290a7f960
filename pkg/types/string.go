package types

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// StringType validates and coerces string values.
type StringType struct {
	name      string
	minLength *int
	maxLength *int
	pattern   *regexp.Regexp
	format    Format
	meta      Metadata
}

// StringOption configures a StringType at construction time.
type StringOption func(*StringType)

// MinLength constrains the minimum length in runes.
func MinLength(n int) StringOption {
	return func(t *StringType) { t.minLength = &n }
}

// MaxLength constrains the maximum length in runes.
func MaxLength(n int) StringOption {
	return func(t *StringType) { t.maxLength = &n }
}

// Pattern constrains values to match expr. An invalid expression panics at
// construction time: schema definition errors are fatal, never deferred.
func Pattern(expr string) StringOption {
	re := regexp.MustCompile(expr)
	return func(t *StringType) { t.pattern = re }
}

// WithFormat constrains values to a named format such as FormatEmail.
func WithFormat(f Format) StringOption {
	return func(t *StringType) { t.format = f }
}

// String creates a string type.
func String(opts ...StringOption) *StringType {
	t := &StringType{name: "string"}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Email creates a string type preconfigured with an email pattern and format.
func Email(opts ...StringOption) *StringType {
	t := &StringType{name: "email", pattern: emailPattern, format: FormatEmail}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *StringType) Name() string       { return t.name }
func (t *StringType) Kind() Kind         { return KindString }
func (t *StringType) Required() bool     { return true }
func (t *StringType) Metadata() Metadata { return t.meta }

func (t *StringType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *StringType) Validate(value any) Result     { return runValidate(t, value) }
func (t *StringType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *StringType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *StringType) checkType(v any) []*ValidationError {
	if _, ok := v.(string); !ok {
		return []*ValidationError{{Reason: fmt.Sprintf("expected string, got %T", v), Value: v}}
	}
	return nil
}

func (t *StringType) checkConstraints(v any) []*ValidationError {
	s, ok := v.(string)
	if !ok {
		return nil
	}

	var errs []*ValidationError
	length := utf8.RuneCountInString(s)
	if t.minLength != nil && length < *t.minLength {
		errs = append(errs, &ValidationError{
			Reason: fmt.Sprintf("string length %d is below minimum length %d", length, *t.minLength),
			Value:  v,
		})
	}
	if t.maxLength != nil && length > *t.maxLength {
		errs = append(errs, &ValidationError{
			Reason: fmt.Sprintf("string length %d is above maximum length %d", length, *t.maxLength),
			Value:  v,
		})
	}
	if t.pattern != nil && !t.pattern.MatchString(s) {
		errs = append(errs, &ValidationError{
			Reason: fmt.Sprintf("value %q does not match pattern %s", s, t.pattern),
			Value:  v,
		})
	}
	if t.format != "" {
		if reason, ok := checkFormat(t.format, s); !ok {
			errs = append(errs, &ValidationError{Reason: reason, Value: v})
		}
	}
	return errs
}

func (t *StringType) coerceValue(v any, _ Policy) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case bool:
		return strconv.FormatBool(s), nil
	case fmt.Stringer:
		return s.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.String:
		return rv.String(), nil
	}
	return nil, newCoercionError(v, t.name, "value has no string representation", nil)
}

func (t *StringType) schemaFragment() map[string]any {
	s := map[string]any{"type": "string"}
	if t.minLength != nil {
		s["minLength"] = *t.minLength
	}
	if t.maxLength != nil {
		s["maxLength"] = *t.maxLength
	}
	if t.pattern != nil {
		s["pattern"] = t.pattern.String()
	}
	if t.format != "" {
		s["format"] = string(t.format)
	}
	return s
}
