package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationFixture struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"min=6"`
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(validationFixture{Email: "not-an-email", Password: "abc"})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-1")

	assert.False(t, resp.Success)
	assert.Equal(t, "req-1", resp.Error.RequestID)

	details := resp.Error.Details.([]ValidationDetail)
	require.Len(t, details, 2)
	assert.Equal(t, "email", details[0].Field)
	assert.Equal(t, "Invalid email format", details[0].Message)
	assert.Equal(t, "password", details[1].Field)
	assert.Equal(t, "Must be at least 6 characters", details[1].Message)
}

func TestFormatValidationErrors_PlainError(t *testing.T) {
	resp := FormatValidationErrors(errors.New("unexpected EOF"), "req-2")

	assert.Equal(t, "unexpected EOF", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}
