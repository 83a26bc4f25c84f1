package shared

import (
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
}

func TestDecoder(t *testing.T) {
	t.Parallel()
	var s signup
	require.NoError(t, Decoder.Decode(&s, url.Values{"name": {"Asha"}, "email": {"asha@example.org"}}))
	assert.Equal(t, signup{Name: "Asha", Email: "asha@example.org"}, s)
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()
	err := Validate.Struct(signup{Email: "nope"})
	require.Error(t, err)

	errs := FieldErrors(err, func(fe validator.FieldError) (string, bool) {
		if fe.Field() == "name" {
			return "Name is required", true
		}
		return "", false
	})
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	t.Parallel()
	assert.Empty(t, FieldErrors(assert.AnError, nil))
}
