package derive

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/caliperhq/caliper/pkg/types"
)

// Option filters which fields take part in derivation.
type Option func(*config)

type config struct {
	only   map[string]bool
	except map[string]bool
}

// Only restricts derivation to the named fields.
func Only(fields ...string) Option {
	return func(c *config) {
		c.only = make(map[string]bool, len(fields))
		for _, f := range fields {
			c.only[f] = true
		}
	}
}

// Except removes the named fields from derivation.
func Except(fields ...string) Option {
	return func(c *config) {
		c.except = make(map[string]bool, len(fields))
		for _, f := range fields {
			c.except[f] = true
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *config) keeps(name string) bool {
	if c.only != nil && !c.only[name] {
		return false
	}
	return !c.except[name]
}

// FromExample infers an object schema from example data: each observed value
// maps to the narrowest type kind that would accept it. Inferred fields are
// required; use FromJSONSchema when the source declares optionality.
func FromExample(example map[string]any, opts ...Option) (*types.MapType, error) {
	if example == nil {
		return nil, fmt.Errorf("derive: example must be a non-nil map")
	}
	cfg := newConfig(opts)

	fields := make(map[string]types.Type, len(example))
	for name, value := range example {
		if !cfg.keeps(name) {
			continue
		}
		fields[name] = inferType(value)
	}
	return types.Map(fields), nil
}

// FromStruct infers an object schema from a struct value by decoding it into
// a map first. Field names honor mapstructure/json-style tags the decoder
// understands.
func FromStruct(v any, opts ...Option) (*types.MapType, error) {
	if v == nil {
		return nil, fmt.Errorf("derive: value must not be nil")
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("derive: value must not be nil")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive: expected a struct, got %T", v)
	}

	var m map[string]any
	if err := mapstructure.Decode(rv.Interface(), &m); err != nil {
		return nil, fmt.Errorf("derive: cannot decode %T: %w", v, err)
	}
	return FromExample(m, opts...)
}

// inferType maps an observed value to a type kind. Unrecognized values,
// raw strings and nils all fall back to string, the least committal kind.
func inferType(v any) types.Type {
	switch value := v.(type) {
	case bool:
		return types.Boolean()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return types.Integer()
	case float32, float64:
		return types.Float()
	case json.Number:
		if _, err := value.Int64(); err == nil {
			return types.Integer()
		}
		return types.Float()
	case time.Time:
		return types.DateTime()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return types.Array(types.String())
		}
		return types.Array(inferType(rv.Index(0).Interface()))
	case reflect.Map:
		// An untyped object placeholder: shape only, no declared fields.
		return types.Map(nil)
	default:
		return types.String()
	}
}

// sortedKeys is shared by the derivation paths that need deterministic
// iteration over document maps.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
