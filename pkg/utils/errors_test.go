package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorString(t *testing.T) {
	err := NewAppError(ErrCodeValidation, "bad input")
	assert.Equal(t, "VALIDATION_ERROR: bad input", err.Error())

	withDetails := NewAppError(ErrCodeInternal, "boom", "stack details")
	assert.Equal(t, "INTERNAL_ERROR: boom (stack details)", withDetails.Error())
}
