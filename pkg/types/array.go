package types

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ArrayType validates and coerces slices whose elements all conform to a
// single item type. The item type is shared by every element, read-only.
type ArrayType struct {
	item     Type
	minItems *int
	maxItems *int
	unique   bool
	meta     Metadata
}

// ArrayOption configures an ArrayType at construction time.
type ArrayOption func(*ArrayType)

// MinItems constrains the minimum element count.
func MinItems(n int) ArrayOption {
	return func(t *ArrayType) { t.minItems = &n }
}

// MaxItems constrains the maximum element count.
func MaxItems(n int) ArrayOption {
	return func(t *ArrayType) { t.maxItems = &n }
}

// UniqueItems rejects arrays containing equal elements.
func UniqueItems() ArrayOption {
	return func(t *ArrayType) { t.unique = true }
}

// Array creates an array type with the given item type.
// A nil item type panics: schema definition errors are fatal at build time.
func Array(item Type, opts ...ArrayOption) *ArrayType {
	if item == nil {
		panic("types: Array requires an item type")
	}
	t := &ArrayType{item: item}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Item returns the element type.
func (t *ArrayType) Item() Type { return t.item }

func (t *ArrayType) Name() string       { return "[" + t.item.Name() + "]" }
func (t *ArrayType) Kind() Kind         { return KindArray }
func (t *ArrayType) Required() bool     { return true }
func (t *ArrayType) Metadata() Metadata { return t.meta }

func (t *ArrayType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *ArrayType) Validate(value any) Result     { return runValidate(t, value) }
func (t *ArrayType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *ArrayType) JSONSchema() map[string]any    { return buildSchema(t) }

func sliceValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv, true
	}
	return reflect.Value{}, false
}

func (t *ArrayType) checkType(v any) []*ValidationError {
	if _, ok := sliceValue(v); !ok {
		return []*ValidationError{{Reason: fmt.Sprintf("expected array, got %T", v), Value: v}}
	}
	return nil
}

func (t *ArrayType) checkConstraints(v any) []*ValidationError {
	rv, ok := sliceValue(v)
	if !ok {
		return nil
	}

	var errs []*ValidationError
	n := rv.Len()
	if t.minItems != nil && n < *t.minItems {
		errs = append(errs, &ValidationError{
			Reason: fmt.Sprintf("array has %d items, below minimum %d", n, *t.minItems),
			Value:  v,
		})
	}
	if t.maxItems != nil && n > *t.maxItems {
		errs = append(errs, &ValidationError{
			Reason: fmt.Sprintf("array has %d items, above maximum %d", n, *t.maxItems),
			Value:  v,
		})
	}
	if t.unique {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if reflect.DeepEqual(rv.Index(i).Interface(), rv.Index(j).Interface()) {
					errs = append(errs, &ValidationError{
						Reason: fmt.Sprintf("items are not unique: index %d duplicates index %d", j, i),
						Value:  v,
					})
				}
			}
		}
	}

	// Every element is checked, even after an earlier one has failed.
	for i := 0; i < n; i++ {
		elem := rv.Index(i).Interface()
		r := t.item.Validate(elem)
		if !r.Valid {
			errs = append(errs, prefixErrors(fmt.Sprintf("item at index %d", i), r.FieldErrors)...)
		}
	}
	return errs
}

func (t *ArrayType) coerceValue(v any, p Policy) (any, error) {
	if s, ok := v.(string); ok {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return nil, newCoercionError(v, t.Name(), fmt.Sprintf("invalid JSON: %v", err), err)
		}
		arr, ok := parsed.([]any)
		if !ok {
			return nil, newCoercionError(v, t.Name(), fmt.Sprintf("JSON value is %T, not an array", parsed), nil)
		}
		return t.coerceElements(arr, p)
	}

	if rv, ok := sliceValue(v); ok {
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return t.coerceElements(elems, p)
	}

	// A bare scalar is boxed into a one-element array under the lenient policy.
	if p == Strict {
		return nil, newCoercionError(v, t.Name(), fmt.Sprintf("expected array, got %T", v), nil)
	}
	item, err := coerceAs(t.item, v, p)
	if err != nil {
		return nil, err
	}
	return []any{item}, nil
}

func (t *ArrayType) coerceElements(elems []any, p Policy) (any, error) {
	out := make([]any, len(elems))
	for i, elem := range elems {
		coerced, err := coerceAs(t.item, elem, p)
		if err != nil {
			return nil, newCoercionError(elem, t.Name(), fmt.Sprintf("item at index %d: %v", i, err), err)
		}
		out[i] = coerced
	}
	return out, nil
}

// coerceAs threads the policy through to child types.
func coerceAs(t Type, v any, p Policy) (any, error) {
	if c, ok := t.(checker); ok {
		return runCoerce(c, v, p)
	}
	return t.Coerce(v)
}

func (t *ArrayType) schemaFragment() map[string]any {
	s := map[string]any{
		"type":  "array",
		"items": t.item.JSONSchema(),
	}
	if t.minItems != nil {
		s["minItems"] = *t.minItems
	}
	if t.maxItems != nil {
		s["maxItems"] = *t.maxItems
	}
	if t.unique {
		s["uniqueItems"] = true
	}
	return s
}
