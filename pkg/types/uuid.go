package types

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDType validates versioned UUID strings. Unlike a plain string pattern
// constraint, a malformed UUID is reported as a type error, so consumers
// that branch on error category see it during the type phase.
type UUIDType struct {
	meta Metadata
}

// UUID creates a UUID type accepting versions 1-5 with RFC 4122 variants.
func UUID() *UUIDType { return &UUIDType{} }

func (t *UUIDType) Name() string       { return "uuid" }
func (t *UUIDType) Kind() Kind         { return KindUUID }
func (t *UUIDType) Required() bool     { return true }
func (t *UUIDType) Metadata() Metadata { return t.meta }

func (t *UUIDType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *UUIDType) Validate(value any) Result     { return runValidate(t, value) }
func (t *UUIDType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *UUIDType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *UUIDType) checkType(v any) []*ValidationError {
	s, ok := v.(string)
	if !ok {
		if _, ok := v.(uuid.UUID); ok {
			return nil
		}
		return []*ValidationError{{Reason: fmt.Sprintf("expected string, got %T", v), Value: v}}
	}
	if !uuidPattern.MatchString(s) {
		return []*ValidationError{{Reason: fmt.Sprintf("value %q is not a valid UUID", s), Value: v}}
	}
	return nil
}

func (t *UUIDType) checkConstraints(any) []*ValidationError { return nil }

func (t *UUIDType) coerceValue(v any, _ Policy) (any, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u.String(), nil
	case [16]byte:
		return uuid.UUID(u).String(), nil
	case string:
		parsed, err := uuid.Parse(u)
		if err != nil {
			return nil, newCoercionError(v, "uuid", fmt.Sprintf("cannot parse %q as a UUID", u), err)
		}
		// Canonical lowercase hyphenated form.
		return parsed.String(), nil
	default:
		return nil, newCoercionError(v, "uuid", fmt.Sprintf("unsupported type %T", v), nil)
	}
}

func (t *UUIDType) schemaFragment() map[string]any {
	return map[string]any{
		"type":    "string",
		"format":  "uuid",
		"pattern": uuidPattern.String(),
	}
}
