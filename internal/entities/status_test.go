package entities_test

import (
	"testing"

	"github.com/varungor365/fashun-order-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from entities.Status
		to   entities.Status
		want bool
	}{
		{entities.StatusPending, entities.StatusConfirmed, true},
		{entities.StatusPending, entities.StatusProcessing, true},
		{entities.StatusPending, entities.StatusShipped, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusPending, entities.StatusDelivered, false},
		{entities.StatusPending, entities.StatusRefunded, false},

		{entities.StatusConfirmed, entities.StatusProcessing, true},
		{entities.StatusConfirmed, entities.StatusShipped, true},
		{entities.StatusConfirmed, entities.StatusCancelled, true},
		{entities.StatusConfirmed, entities.StatusPending, false},

		{entities.StatusProcessing, entities.StatusShipped, true},
		{entities.StatusProcessing, entities.StatusCancelled, true},
		{entities.StatusProcessing, entities.StatusConfirmed, false},

		{entities.StatusShipped, entities.StatusDelivered, true},
		{entities.StatusShipped, entities.StatusCancelled, true},
		{entities.StatusShipped, entities.StatusProcessing, false},

		{entities.StatusDelivered, entities.StatusRefunded, true},
		{entities.StatusDelivered, entities.StatusShipped, false},
		{entities.StatusDelivered, entities.StatusCancelled, false},

		{entities.StatusCancelled, entities.StatusRefunded, true},
		{entities.StatusCancelled, entities.StatusPending, false},

		{entities.StatusRefunded, entities.StatusPending, false},
		{entities.StatusRefunded, entities.StatusCancelled, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, entities.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, st := range entities.OrderStatuses() {
		assert.True(t, st.Valid(), string(st))
	}
	assert.False(t, entities.Status("unknown").Valid())
	assert.False(t, entities.Status("").Valid())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, entities.StatusDelivered.IsTerminal())
	assert.True(t, entities.StatusCancelled.IsTerminal())
	assert.True(t, entities.StatusRefunded.IsTerminal())
	assert.False(t, entities.StatusPending.IsTerminal())
	assert.False(t, entities.StatusShipped.IsTerminal())
}

func TestPaymentStatus_Valid(t *testing.T) {
	for _, st := range entities.PaymentStatuses() {
		assert.True(t, st.Valid(), string(st))
	}
	assert.False(t, entities.PaymentStatus("charged").Valid())
}

func TestOrderItem_HasVariant(t *testing.T) {
	assert.True(t, entities.OrderItem{VariantSize: "M", VariantColor: "Black"}.HasVariant())
	assert.False(t, entities.OrderItem{VariantSize: "M"}.HasVariant())
	assert.False(t, entities.OrderItem{VariantColor: "Black"}.HasVariant())
	assert.False(t, entities.OrderItem{}.HasVariant())
}
