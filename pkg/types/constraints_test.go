package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringConstraints(t *testing.T) {
	t.Run("Length Bounds", func(t *testing.T) {
		typ := String(MinLength(2), MaxLength(4))

		assert.True(t, typ.Validate("ab").Valid)
		assert.True(t, typ.Validate("abcd").Valid)

		r := typ.Validate("a")
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "below minimum length 2")

		r = typ.Validate("abcde")
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "above maximum length 4")
	})

	t.Run("Length Counts Runes", func(t *testing.T) {
		typ := String(MaxLength(3))
		assert.True(t, typ.Validate("äöü").Valid)
	})

	t.Run("Pattern", func(t *testing.T) {
		typ := String(Pattern(`^[a-z]+$`))
		assert.True(t, typ.Validate("abc").Valid)

		r := typ.Validate("ABC")
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "does not match pattern")
	})

	t.Run("Format", func(t *testing.T) {
		typ := String(WithFormat(FormatIPv4))
		assert.True(t, typ.Validate("10.0.0.1").Valid)
		assert.False(t, typ.Validate("10.0.0.256").Valid)
		assert.False(t, typ.Validate("::1").Valid)
	})

	t.Run("All Violations Collected", func(t *testing.T) {
		typ := String(MinLength(5), Pattern(`^[a-z]+$`))
		r := typ.Validate("AB")
		assert.False(t, r.Valid)
		assert.Len(t, r.Errors, 2)
	})
}

func TestNumericConstraints(t *testing.T) {
	t.Run("Minimum", func(t *testing.T) {
		typ := Integer(Minimum(0))
		assert.True(t, typ.Validate(0).Valid)

		r := typ.Validate(-1)
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "value -1 is below minimum 0")
	})

	t.Run("Maximum", func(t *testing.T) {
		typ := Integer(Maximum(10))
		assert.True(t, typ.Validate(10).Valid)
		assert.False(t, typ.Validate(11).Valid)
	})

	t.Run("Exclusive Bounds", func(t *testing.T) {
		typ := Float(ExclusiveMinimum(0), ExclusiveMaximum(1))
		assert.True(t, typ.Validate(0.5).Valid)

		r := typ.Validate(0.0)
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "must be greater than 0")

		r = typ.Validate(1.0)
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "must be less than 1")
	})

	t.Run("MultipleOf", func(t *testing.T) {
		typ := Integer(MultipleOf(5))
		assert.True(t, typ.Validate(15).Valid)
		assert.True(t, typ.Validate(0).Valid)

		r := typ.Validate(7)
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "not a multiple of 5")
	})

	t.Run("Bounds Accumulate", func(t *testing.T) {
		typ := Integer(Minimum(0), MultipleOf(2))
		r := typ.Validate(-3)
		assert.False(t, r.Valid)
		assert.Len(t, r.Errors, 2)
	})
}

func TestTemporalFormatConstraint(t *testing.T) {
	t.Run("ISO8601 Date", func(t *testing.T) {
		typ := Date(TimeFormat(ISO8601))
		assert.True(t, typ.Validate("2024-01-15").Valid)

		// Parseable, but not ISO 8601: a constraint error, not a type error.
		r := typ.Validate("2024/01/15")
		assert.False(t, r.Valid)
		assert.Contains(t, r.Errors[0], "ISO 8601")
	})

	t.Run("Custom Layout", func(t *testing.T) {
		typ := DateTime(TimeFormat("2006-01-02 15:04:05"))
		assert.True(t, typ.Validate("2024-01-15 10:30:00").Valid)
		assert.False(t, typ.Validate("2024-01-15T10:30:00Z").Valid)
	})

	t.Run("Native Values Skip Format", func(t *testing.T) {
		typ := Date(TimeFormat(ISO8601))
		r := typ.Validate(mustParse(t, "2006-01-02", "2024-01-15"))
		assert.True(t, r.Valid)
	})
}

func TestRequiredNil(t *testing.T) {
	r := String().Validate(nil)
	assert.False(t, r.Valid)
	assert.Equal(t, []string{"value is required but got nil"}, r.Errors)
}

func TestMetadataDoesNotAffectValidation(t *testing.T) {
	plain := Integer(Minimum(0))
	annotated := plain.WithMetadata(Metadata{Description: "an age", Example: 30})

	assert.Equal(t, plain.Validate(-1).Errors, annotated.Validate(-1).Errors)
	assert.Equal(t, "an age", annotated.Metadata().Description)
	// The original is untouched: WithMetadata returns a copy.
	assert.Empty(t, plain.Metadata().Description)
}
