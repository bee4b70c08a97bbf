package response

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindingFixture struct {
	Email    string `validate:"required,email"`
	Quantity int    `validate:"gte=1,lte=10"`
}

func TestBindingErrorsFieldMap(t *testing.T) {
	err := validator.New().Struct(&bindingFixture{Email: "not-an-email", Quantity: 50})
	require.Error(t, err)

	result := BindingErrors(err)
	fields, ok := result.(map[string]string)
	require.True(t, ok)

	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at most 10", fields["quantity"])
}

func TestBindingErrorsRequired(t *testing.T) {
	err := validator.New().Struct(&bindingFixture{Quantity: 5})
	require.Error(t, err)

	fields := BindingErrors(err).(map[string]string)
	assert.Equal(t, "this field is required", fields["email"])
}

func TestBindingErrorsNonValidationError(t *testing.T) {
	result := BindingErrors(errors.New("unexpected EOF"))
	assert.Equal(t, "unexpected EOF", result)
}
