package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalAbsorption(t *testing.T) {
	// Nil is absorbed regardless of the inner type's own constraints.
	inners := []Type{
		String(MinLength(10)),
		Integer(Minimum(100)),
		Array(UUID(), MinItems(5)),
		Map(map[string]Type{"x": Boolean()}),
	}
	for _, inner := range inners {
		opt := Optional(inner)
		r := opt.Validate(nil)
		assert.True(t, r.Valid, "Optional(%s).Validate(nil)", inner.Name())

		v, err := opt.Coerce(nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestOptionalDelegatesFullContract(t *testing.T) {
	opt := Optional(String(MinLength(3)))

	r := opt.Validate("ab")
	require.False(t, r.Valid)
	assert.Contains(t, r.Errors[0], "below minimum length 3")

	r = opt.Validate(42)
	require.False(t, r.Valid)
	assert.Contains(t, r.Errors[0], "expected string")

	v, err := opt.Coerce(42)
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestOptionalIsNeverRequired(t *testing.T) {
	assert.False(t, Optional(String()).Required())
	assert.True(t, String().Required())
}

func TestOptionalWrapIsIdempotent(t *testing.T) {
	inner := Integer()
	once := Optional(inner)
	twice := Optional(once)
	assert.Same(t, once, twice)
}

func TestOptionalSchemaDelegates(t *testing.T) {
	opt := Optional(Integer(Minimum(0)))
	schema := opt.JSONSchema()
	assert.Equal(t, "integer", schema["type"])
	// No nullable marker: optionality is structural, expressed by the
	// parent's "required" list.
	_, hasNullable := schema["nullable"]
	assert.False(t, hasNullable)
}

func TestOptionalName(t *testing.T) {
	assert.Equal(t, "integer?", Optional(Integer()).Name())
}
