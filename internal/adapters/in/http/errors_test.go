package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/core/ports"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", fmt.Errorf("%w: sales rep", services.ErrUnauthorized), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"illegal transition", fmt.Errorf("wrap: %w", order.ErrIllegalTransition), http.StatusConflict},
		{"insufficient stock", medicine.ErrInsufficientStock, http.StatusConflict},
		{"username taken", ports.ErrUsernameTaken, http.StatusConflict},
		{"invalid status", order.ErrInvalidStatus, http.StatusUnprocessableEntity},
		{"invalid selection", order.ErrInvalidSelection, http.StatusUnprocessableEntity},
		{"required value", errs.NewValueIsRequiredError("customer name"), http.StatusUnprocessableEntity},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000), http.StatusUnprocessableEntity},
		{"joined validation errors", errors.Join(errs.NewValueIsInvalidError("role"), errs.NewValueIsRequiredError("username")), http.StatusUnprocessableEntity},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
