package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order id", "7f1c")

		assert.Equal(t, "order id", err.ParamName)
		assert.Equal(t, "7f1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7f1c", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("medicine id", "a1", cause)

		assert.Equal(t,
			"object not found: param is: medicine id, ID is: a1 (cause: connection reset)",
			err.Error())
		assert.Equal(t, cause, err.Cause)
	})

	t.Run("non-string id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("page", 3)
		assert.Equal(t, "object not found: %!s(int=3)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("delivery method")
	assert.Equal(t, "value is invalid: delivery method", err.Error())

	withCause := errs.NewValueIsInvalidErrorWithCause("role", errors.New(`"courier" is not a valid role`))
	assert.Equal(t, `value is invalid: role (cause: "courier" is not a valid role)`, withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 12, 1, 10)

		assert.Equal(t, 12, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10, err.Max)
		assert.Equal(t, "value is invalid: 12 is quantity, min value is 1, max value is 10", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("tax rate", "1.5", 0, 1, errors.New("rate above 100%"))
		assert.Equal(t,
			"value is invalid: 1.5 is tax rate, min value is 0, max value is 1 (cause: rate above 100%)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("customer name length", "Jane\nDoe", 1, 100)
		assert.Contains(t, err.Error(), "Jane Doe")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customer name")
	assert.Equal(t, "value is required: customer name", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("delivery address", errors.New("delivery method is delivery"))
	assert.Equal(t,
		"value is required: delivery address (cause: delivery method is delivery)",
		withCause.Error())
}

func TestErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", errs.NewObjectNotFoundError("order id", "x"), errs.ErrObjectNotFound},
		{"invalid", errs.NewValueIsInvalidError("role"), errs.ErrValueIsInvalid},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 5), errs.ErrValueIsOutOfRange},
		{"required", errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("create order: %w", tt.err), tt.sentinel)
		})
	}
}
