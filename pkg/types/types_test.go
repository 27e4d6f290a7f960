package types

import (
	"testing"
	"time"
)

func TestStringType(t *testing.T) {
	typ := String()

	if typ.Name() != "string" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "string")
	}

	tests := []struct {
		value any
		valid bool
	}{
		{"hello", true},
		{"", true},
		{42, false},
		{3.14, false},
		{true, false},
		{nil, false}, // required by default
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

func TestIntegerType(t *testing.T) {
	typ := Integer()

	if typ.Name() != "integer" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "integer")
	}

	tests := []struct {
		value any
		valid bool
	}{
		{42, true},
		{int8(42), true},
		{int64(42), true},
		{uint(7), true},
		{float64(42), true}, // whole number, JSON interop
		{float64(42.5), false},
		{"42", false},
		{true, false},
		{nil, false},
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

func TestFloatType(t *testing.T) {
	typ := Float()

	if typ.Name() != "float" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "float")
	}

	tests := []struct {
		value any
		valid bool
	}{
		{3.14, true},
		{float32(3.14), true},
		{42, true}, // an integer is valid wherever a float is expected
		{int64(42), true},
		{"3.14", false},
		{true, false},
		{nil, false},
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

func TestBooleanType(t *testing.T) {
	typ := Boolean()

	if typ.Name() != "boolean" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "boolean")
	}

	tests := []struct {
		value any
		valid bool
	}{
		{true, true},
		{false, true},
		{1, false},
		{"true", false},
		{nil, false},
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

func TestDateType(t *testing.T) {
	typ := Date()

	tests := []struct {
		value any
		valid bool
	}{
		{time.Now(), true},
		{"2024-01-15", true},
		{"2024/01/15", true},
		{"not-a-date", false},
		{42, false},
		{nil, false},
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

func TestDateTimeType(t *testing.T) {
	typ := DateTime()

	tests := []struct {
		value any
		valid bool
	}{
		{time.Now(), true},
		{"2024-01-15T10:30:00Z", true},
		{"2024-01-15 10:30:00", true},
		{"garbage", false},
		{3.5, false},
		{nil, false},
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

func TestUUIDType(t *testing.T) {
	typ := UUID()

	tests := []struct {
		value any
		valid bool
	}{
		{"123e4567-e89b-12d3-a456-426614174000", true},  // version 1, variant a
		{"123e4567-e89b-42d3-b456-426614174000", true},  // version 4, variant b
		{"123e4567-e89b-62d3-a456-426614174000", false}, // version 6 rejected
		{"123e4567-e89b-12d3-c456-426614174000", false}, // variant c rejected
		{"not-a-uuid", false},
		{42, false},
		{nil, false},
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

// A malformed UUID is a type error, produced by the type phase rather than
// the constraint phase; it must show up even with no constraints configured.
func TestUUIDMalformedIsTypeError(t *testing.T) {
	typ := UUID()
	errs := typ.checkType("not-a-uuid")
	if len(errs) != 1 {
		t.Fatalf("checkType errors = %d, want 1", len(errs))
	}
	if extra := typ.checkConstraints("not-a-uuid"); len(extra) != 0 {
		t.Errorf("checkConstraints errors = %d, want 0", len(extra))
	}
}

func TestEmailType(t *testing.T) {
	typ := Email()

	if typ.Name() != "email" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "email")
	}

	tests := []struct {
		value any
		valid bool
	}{
		{"ana@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"not-an-email", false},
		{"@example.com", false},
		{42, false},
	}

	for _, tt := range tests {
		r := typ.Validate(tt.value)
		if r.Valid != tt.valid {
			t.Errorf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, r.Valid, tt.valid, r.Errors)
		}
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	typ := Map(map[string]Type{
		"name": String(MinLength(1)),
		"age":  Integer(Minimum(0)),
	})
	value := map[string]any{"name": "", "age": -1}

	first := typ.Validate(value)
	second := typ.Validate(value)

	if first.Valid != second.Valid || len(first.Errors) != len(second.Errors) {
		t.Fatalf("repeated Validate differs: %+v vs %+v", first, second)
	}
	for i := range first.Errors {
		if first.Errors[i] != second.Errors[i] {
			t.Errorf("error %d differs: %q vs %q", i, first.Errors[i], second.Errors[i])
		}
	}
}

func TestConcurrentValidation(t *testing.T) {
	typ := Map(map[string]Type{
		"name": String(MinLength(1)),
		"age":  Optional(Integer(Minimum(0))),
	})

	done := make(chan bool)
	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if r := typ.Validate(map[string]any{"name": "Ana", "age": 30}); !r.Valid {
					t.Errorf("unexpected errors: %v", r.Errors)
				}
			}
			done <- true
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}
}
