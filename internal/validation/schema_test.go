package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemasCompile(t *testing.T) {
	for _, s := range []*Schema{PartSchema, TaskSchema} {
		compiled, err := s.compile()
		require.NoError(t, err, s.Name)
		assert.NotNil(t, compiled)
	}
}

func TestSchemaValidate(t *testing.T) {
	assert.NoError(t, TaskSchema.Validate(json.RawMessage(`{"labels":["a","b"],"amount_min":1,"amount_max":4}`)))

	err := TaskSchema.Validate(json.RawMessage(`{"labels":["a","b"],"amount_min":"1","amount_max":4}`))
	var inv *ErrInvalidPayload
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, TaskSchemaV1, inv.Schema)
}
