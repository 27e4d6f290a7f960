package types

// OptionalType wraps exactly one inner type and absorbs nil: nil validates
// without delegating and coerces to nil. Non-nil values delegate the full
// contract to the inner type. It is the only type whose Required is false;
// a parent object expresses the optionality structurally by leaving the
// field out of its "required" list instead of annotating the schema.
type OptionalType struct {
	inner Type
	meta  Metadata
}

// Optional wraps inner in an optional type. Wrapping an already-optional
// type is a no-op. A nil inner type panics at build time.
func Optional(inner Type) Type {
	if inner == nil {
		panic("types: Optional requires an inner type")
	}
	if inner.Kind() == KindOptional {
		return inner
	}
	return &OptionalType{inner: inner}
}

// Inner returns the wrapped type.
func (t *OptionalType) Inner() Type { return t.inner }

func (t *OptionalType) Name() string       { return t.inner.Name() + "?" }
func (t *OptionalType) Kind() Kind         { return KindOptional }
func (t *OptionalType) Required() bool     { return false }
func (t *OptionalType) Metadata() Metadata { return t.meta }

func (t *OptionalType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *OptionalType) Validate(value any) Result     { return runValidate(t, value) }
func (t *OptionalType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }

func (t *OptionalType) checkType(v any) []*ValidationError {
	// Delegate the inner type's full contract, not just its type check.
	return t.inner.Validate(v).FieldErrors
}

func (t *OptionalType) checkConstraints(any) []*ValidationError { return nil }

func (t *OptionalType) coerceValue(v any, p Policy) (any, error) {
	return coerceAs(t.inner, v, p)
}

// JSONSchema delegates to the inner type; no nullable marker is added.
func (t *OptionalType) JSONSchema() map[string]any { return buildSchema(t) }

func (t *OptionalType) schemaFragment() map[string]any {
	return t.inner.JSONSchema()
}
