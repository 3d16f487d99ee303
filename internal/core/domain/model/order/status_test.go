package order_test

import (
	"testing"

	"medorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromCode(t *testing.T) {
	for _, s := range order.Statuses() {
		t.Run(s.Code(), func(t *testing.T) {
			parsed, err := order.StatusFromCode(s.Code())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		_, err := order.StatusFromCode("returned")

		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestStatus_Validate(t *testing.T) {
	assert.ErrorIs(t, order.UnknownStatus.Validate(), order.ErrInvalidStatus)
	assert.ErrorIs(t, order.Status(99).Validate(), order.ErrInvalidStatus)
	assert.NoError(t, order.ReadyForPickup.Validate())
	assert.Equal(t, "ready_for_pickup", order.ReadyForPickup.Code())
	assert.Equal(t, "Ready for Pickup", order.ReadyForPickup.String())
}

func TestStatus_ValidateTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    order.Status
		to      order.Status
		wantErr error
	}{
		{name: "pending to processing", from: order.Pending, to: order.Processing},
		{name: "processing to ready", from: order.Processing, to: order.ReadyForPickup},
		{name: "ready to shipped", from: order.ReadyForPickup, to: order.Shipped},
		{name: "shipped to delivered", from: order.Shipped, to: order.Delivered},
		{name: "pending to cancelled", from: order.Pending, to: order.Cancelled},
		{name: "shipped to cancelled", from: order.Shipped, to: order.Cancelled},
		{name: "correction back to pending", from: order.Processing, to: order.Pending},
		{name: "same status", from: order.Processing, to: order.Processing},
		{name: "delivered resubmitted", from: order.Delivered, to: order.Delivered},
		{name: "delivered is absorbing", from: order.Delivered, to: order.Shipped, wantErr: order.ErrIllegalTransition},
		{name: "cancelled is absorbing", from: order.Cancelled, to: order.Pending, wantErr: order.ErrIllegalTransition},
		{name: "unknown target", from: order.Pending, to: order.UnknownStatus, wantErr: order.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.from.ValidateTransitionTo(tc.to)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_HoldsStock(t *testing.T) {
	holding := map[order.Status]bool{
		order.Pending:        false,
		order.Processing:     true,
		order.ReadyForPickup: true,
		order.Shipped:        true,
		order.Delivered:      true,
		order.Cancelled:      false,
	}

	for status, want := range holding {
		t.Run(status.Code(), func(t *testing.T) {
			assert.Equal(t, want, status.HoldsStock())
		})
	}
}

func TestPaymentStatusFromCode(t *testing.T) {
	for _, p := range order.PaymentStatuses() {
		parsed, err := order.PaymentStatusFromCode(p.Code())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := order.PaymentStatusFromCode("pending")
	require.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.ErrorIs(t, order.UnknownPaymentStatus.Validate(), order.ErrInvalidStatus)
}
