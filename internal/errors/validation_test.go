package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationBuilder_NoErrors(t *testing.T) {
	assert.NoError(t, NewValidationBuilder().Build())
}

func TestValidationBuilder_RequiredFields(t *testing.T) {
	err := NewValidationBuilder().
		RequiredField("Roller").
		RequiredField("Macros").
		Build()

	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Roller: is required")
	assert.Contains(t, err.Error(), "Macros: is required")

	var structured *Error
	require.True(t, As(err, &structured))
	assert.NotNil(t, structured.Meta["validation_errors"])
}
