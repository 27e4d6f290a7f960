package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caliperhq/caliper/pkg/types"
)

func TestSchemaObject(t *testing.T) {
	typ := types.Map(map[string]types.Type{
		"name": types.String(types.MinLength(1)),
		"age":  types.Optional(types.Integer(types.Minimum(0))),
	})

	schema, err := Schema(typ)
	require.NoError(t, err)

	assert.True(t, schema.Type.Is("object"))
	assert.Contains(t, schema.Properties, "name")
	assert.Contains(t, schema.Properties, "age")
	assert.Equal(t, []string{"name"}, schema.Required)

	name := schema.Properties["name"].Value
	require.NotNil(t, name)
	assert.True(t, name.Type.Is("string"))
	assert.Equal(t, uint64(1), name.MinLength)

	age := schema.Properties["age"].Value
	require.NotNil(t, age)
	assert.True(t, age.Type.Is("integer"))
	require.NotNil(t, age.Min)
	assert.Equal(t, 0.0, *age.Min)
}

func TestSchemaCarriesMetadata(t *testing.T) {
	typ := types.Describe(types.String(), "a display name")
	schema, err := Schema(typ)
	require.NoError(t, err)
	assert.Equal(t, "a display name", schema.Description)
}

func TestSchemaArray(t *testing.T) {
	schema, err := Schema(types.Array(types.UUID(), types.UniqueItems()))
	require.NoError(t, err)

	assert.True(t, schema.Type.Is("array"))
	assert.True(t, schema.UniqueItems)
	require.NotNil(t, schema.Items)
	assert.Equal(t, "uuid", schema.Items.Value.Format)
}

func TestSchemaRef(t *testing.T) {
	ref, err := SchemaRef(types.Boolean())
	require.NoError(t, err)
	assert.Empty(t, ref.Ref)
	assert.True(t, ref.Value.Type.Is("boolean"))
}
