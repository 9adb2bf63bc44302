package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorReportsWireNames(t *testing.T) {
	type payload struct {
		Title string `json:"title" validate:"required"`
		Price *int   `json:"price" validate:"required"`
	}

	v := NewValidator()

	err := v.Validate(payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "price")
}

func TestValidatorAcceptsZeroThroughPointer(t *testing.T) {
	type payload struct {
		ID *int `json:"id" validate:"required"`
	}

	v := NewValidator()

	zero := 0
	assert.NoError(t, v.Validate(payload{ID: &zero}))
	assert.Error(t, v.Validate(payload{}))
}
