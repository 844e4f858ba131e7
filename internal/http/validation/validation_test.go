package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutForm struct {
	FullName string `form:"full_name" validate:"required,min=2,max=100"`
	Email    string `form:"email" validate:"omitempty,email"`
	ZoneID   string `form:"zone_id" validate:"required"`
	Currency string `form:"currency" validate:"omitempty,oneof=NGN GHS"`
}

func TestFromBindErrorMapsToFormTags(t *testing.T) {
	v := validator.New()
	err := v.Struct(checkoutForm{Email: "not-an-email", Currency: "EUR"})
	require.Error(t, err)

	errs := FromBindError(err, &checkoutForm{})

	assert.Equal(t, "This field is required.", errs["full_name"])
	assert.Equal(t, "Enter a valid email address.", errs["email"])
	assert.Equal(t, "This field is required.", errs["zone_id"])
	assert.Equal(t, "Choose one of the allowed options.", errs["currency"])
}

func TestFromBindErrorMinMessageNamesBound(t *testing.T) {
	v := validator.New()
	err := v.Struct(checkoutForm{FullName: "A", ZoneID: "z"})
	require.Error(t, err)

	errs := FromBindError(err, &checkoutForm{})
	assert.Equal(t, "Must be at least 2 characters.", errs["full_name"])
}

func TestFromBindErrorNonValidationError(t *testing.T) {
	errs := FromBindError(errors.New("unexpected EOF"), &checkoutForm{})
	assert.Equal(t, "The submitted form is invalid.", errs["_"])
}
