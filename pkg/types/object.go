package types

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// fieldSet is the field-name→type mapping shared by MapType and ObjectType.
// order fixes the iteration order so diagnostics and emitted schemas are
// deterministic.
type fieldSet struct {
	fields map[string]Type
	order  []string
}

func (fs fieldSet) declared(name string) bool {
	_, ok := fs.fields[name]
	return ok
}

// mapValue converts any string-keyed map into map[string]any.
func mapValue(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// checkFields validates every declared field, qualifying errors with the
// field name. A missing value validates as nil, so required fields surface
// their nil-required error under the field prefix.
func (fs fieldSet) checkFields(m map[string]any) []*ValidationError {
	var errs []*ValidationError
	for _, name := range fs.order {
		value := m[name]
		r := fs.fields[name].Validate(value)
		if !r.Valid {
			errs = append(errs, prefixErrors(fmt.Sprintf("field %q", name), r.FieldErrors)...)
		}
	}
	return errs
}

// checkExtras reports one error listing every key not declared in the schema.
func (fs fieldSet) checkExtras(m map[string]any) []*ValidationError {
	var extras []string
	for k := range m {
		if !fs.declared(k) {
			extras = append(extras, k)
		}
	}
	if len(extras) == 0 {
		return nil
	}
	sort.Strings(extras)
	return []*ValidationError{{
		Reason: fmt.Sprintf("unexpected fields: %s", strings.Join(extras, ", ")),
	}}
}

// coerceFields coerces declared fields into a fresh map. A field appears in
// the output only if a value was present or the field is required; optional
// absent fields are omitted rather than set to nil.
func (fs fieldSet) coerceFields(target string, m map[string]any, p Policy) (map[string]any, error) {
	out := make(map[string]any, len(fs.order))
	for _, name := range fs.order {
		ft := fs.fields[name]
		value, present := m[name]
		if !present && !ft.Required() {
			continue
		}
		coerced, err := coerceAs(ft, value, p)
		if err != nil {
			return nil, newCoercionError(value, target, fmt.Sprintf("field %q: %v", name, err), err)
		}
		out[name] = coerced
	}
	return out, nil
}

func (fs fieldSet) schemaFragment(additional bool) map[string]any {
	props := make(map[string]any, len(fs.order))
	required := []string{}
	for _, name := range fs.order {
		ft := fs.fields[name]
		props[name] = ft.JSONSchema()
		if ft.Required() {
			required = append(required, name)
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": additional,
	}
}

func parseObjectJSON(s, target string) (map[string]any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, newCoercionError(s, target, fmt.Sprintf("invalid JSON: %v", err), err)
	}
	m, ok := parsed.(map[string]any)
	if !ok {
		return nil, newCoercionError(s, target, fmt.Sprintf("JSON value is %T, not an object", parsed), nil)
	}
	return m, nil
}

// MapType validates and coerces string-keyed mappings against a declared
// field map. Keys not declared in the schema are tolerated (and passed
// through by coercion) unless additional properties are disallowed.
type MapType struct {
	fieldSet
	additional bool
	meta       Metadata
}

// MapOption configures a MapType at construction time.
type MapOption func(*MapType)

// AdditionalProperties sets whether undeclared keys are tolerated.
// The default is true.
func AdditionalProperties(allowed bool) MapOption {
	return func(t *MapType) { t.additional = allowed }
}

// Map creates an object type from a field-name→type map. Field types must
// not be nil; a nil entry panics at build time. Fields iterate in sorted
// name order for deterministic output.
func Map(fields map[string]Type, opts ...MapOption) *MapType {
	fs := fieldSet{fields: make(map[string]Type, len(fields)), order: make([]string, 0, len(fields))}
	for name, ft := range fields {
		if ft == nil {
			panic(fmt.Sprintf("types: field %q has a nil type", name))
		}
		fs.fields[name] = ft
		fs.order = append(fs.order, name)
	}
	sort.Strings(fs.order)

	t := &MapType{fieldSet: fs, additional: true}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Fields returns the declared field names in iteration order.
func (t *MapType) Fields() []string { return append([]string(nil), t.order...) }

// Field returns the declared type for name.
func (t *MapType) Field(name string) (Type, bool) {
	ft, ok := t.fields[name]
	return ft, ok
}

func (t *MapType) Name() string       { return "object" }
func (t *MapType) Kind() Kind         { return KindMap }
func (t *MapType) Required() bool     { return true }
func (t *MapType) Metadata() Metadata { return t.meta }

func (t *MapType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *MapType) Validate(value any) Result     { return runValidate(t, value) }
func (t *MapType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *MapType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *MapType) checkType(v any) []*ValidationError {
	if _, ok := mapValue(v); !ok {
		return []*ValidationError{{Reason: fmt.Sprintf("expected object, got %T", v), Value: v}}
	}
	return nil
}

func (t *MapType) checkConstraints(v any) []*ValidationError {
	m, ok := mapValue(v)
	if !ok {
		return nil
	}
	errs := t.checkFields(m)
	if !t.additional {
		errs = append(errs, t.checkExtras(m)...)
	}
	return errs
}

func (t *MapType) coerceValue(v any, p Policy) (any, error) {
	var m map[string]any
	if s, ok := v.(string); ok {
		parsed, err := parseObjectJSON(s, t.Name())
		if err != nil {
			return nil, err
		}
		m = parsed
	} else if mv, ok := mapValue(v); ok {
		m = mv
	} else {
		return nil, newCoercionError(v, t.Name(), fmt.Sprintf("expected object, got %T", v), nil)
	}

	out, err := t.coerceFields(t.Name(), m, p)
	if err != nil {
		return nil, err
	}
	if t.additional {
		// Undeclared keys pass through unchanged.
		for k, val := range m {
			if !t.declared(k) {
				out[k] = val
			}
		}
	}
	return out, nil
}

func (t *MapType) schemaFragment() map[string]any {
	return t.fieldSet.schemaFragment(t.additional)
}

// ObjectType is the strict sibling of MapType: fields are declared
// imperatively through ObjectBuilder and additional properties are always
// rejected.
type ObjectType struct {
	fieldSet
	meta Metadata
}

// ObjectBuilder declares the fields of an ObjectType.
type ObjectBuilder struct {
	fs fieldSet
}

// NewObject starts building a strict object type.
func NewObject() *ObjectBuilder {
	return &ObjectBuilder{fs: fieldSet{fields: make(map[string]Type)}}
}

func (b *ObjectBuilder) add(name string, t Type) *ObjectBuilder {
	if t == nil {
		panic(fmt.Sprintf("types: field %q has a nil type", name))
	}
	if !b.fs.declared(name) {
		b.fs.order = append(b.fs.order, name)
	}
	b.fs.fields[name] = t
	return b
}

// Field declares a required field.
func (b *ObjectBuilder) Field(name string, t Type) *ObjectBuilder {
	return b.add(name, t)
}

// RequiredField declares a required field; alias of Field.
func (b *ObjectBuilder) RequiredField(name string, t Type) *ObjectBuilder {
	return b.add(name, t)
}

// OptionalField declares a field that tolerates nil or absence.
func (b *ObjectBuilder) OptionalField(name string, t Type) *ObjectBuilder {
	return b.add(name, Optional(t))
}

// Build compiles the declared fields into an ObjectType.
// Fields keep their declaration order.
func (b *ObjectBuilder) Build() *ObjectType {
	fs := fieldSet{
		fields: make(map[string]Type, len(b.fs.fields)),
		order:  append([]string(nil), b.fs.order...),
	}
	for name, ft := range b.fs.fields {
		fs.fields[name] = ft
	}
	return &ObjectType{fieldSet: fs}
}

func (t *ObjectType) Name() string       { return "object" }
func (t *ObjectType) Kind() Kind         { return KindObject }
func (t *ObjectType) Required() bool     { return true }
func (t *ObjectType) Metadata() Metadata { return t.meta }

func (t *ObjectType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *ObjectType) Validate(value any) Result     { return runValidate(t, value) }
func (t *ObjectType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *ObjectType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *ObjectType) checkType(v any) []*ValidationError {
	if _, ok := mapValue(v); !ok {
		return []*ValidationError{{Reason: fmt.Sprintf("expected object, got %T", v), Value: v}}
	}
	return nil
}

func (t *ObjectType) checkConstraints(v any) []*ValidationError {
	m, ok := mapValue(v)
	if !ok {
		return nil
	}
	errs := t.checkFields(m)
	errs = append(errs, t.checkExtras(m)...)
	return errs
}

func (t *ObjectType) coerceValue(v any, p Policy) (any, error) {
	var m map[string]any
	if s, ok := v.(string); ok {
		parsed, err := parseObjectJSON(s, t.Name())
		if err != nil {
			return nil, err
		}
		m = parsed
	} else if mv, ok := mapValue(v); ok {
		m = mv
	} else {
		return nil, newCoercionError(v, t.Name(), fmt.Sprintf("expected object, got %T", v), nil)
	}
	return t.coerceFields(t.Name(), m, p)
}

func (t *ObjectType) schemaFragment() map[string]any {
	return t.fieldSet.schemaFragment(false)
}
