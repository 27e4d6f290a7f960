package types

import (
	"fmt"
	"strings"
)

// BooleanType validates and coerces boolean values. It has no constraints
// beyond the type check.
type BooleanType struct {
	meta Metadata
}

// Boolean creates a boolean type.
func Boolean() *BooleanType { return &BooleanType{} }

func (t *BooleanType) Name() string       { return "boolean" }
func (t *BooleanType) Kind() Kind         { return KindBoolean }
func (t *BooleanType) Required() bool     { return true }
func (t *BooleanType) Metadata() Metadata { return t.meta }

func (t *BooleanType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *BooleanType) Validate(value any) Result     { return runValidate(t, value) }
func (t *BooleanType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *BooleanType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *BooleanType) checkType(v any) []*ValidationError {
	if _, ok := v.(bool); !ok {
		return []*ValidationError{{Reason: fmt.Sprintf("expected boolean, got %T", v), Value: v}}
	}
	return nil
}

func (t *BooleanType) checkConstraints(any) []*ValidationError { return nil }

func (t *BooleanType) coerceValue(v any, p Policy) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true", "TRUE", "1":
			return true, nil
		case "false", "FALSE", "0":
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "on", "true", "1":
			return true, nil
		case "no", "off", "false", "0":
			return false, nil
		}
	}
	if num, ok := numericValue(v); ok {
		switch num {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	}
	if p == Strict {
		return nil, newCoercionError(v, "boolean", fmt.Sprintf("value %v is not a recognized boolean", v), nil)
	}
	// Generic truthiness: anything non-nil that is not false counts as true.
	return true, nil
}

func (t *BooleanType) schemaFragment() map[string]any {
	return map[string]any{"type": "boolean"}
}
