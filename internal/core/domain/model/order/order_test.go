package order_test

import (
	"testing"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	weight := kernel.MustNewWeight(8)

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("Asha", "Metro City", weight, "BlueDart")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Zero(t, o.ID())
		assert.Equal(t, "Asha", o.CustomerName())
		assert.Equal(t, "Metro City", o.Destination())
		assert.True(t, o.Weight().IsEqual(weight))
		assert.Equal(t, "BlueDart", o.Courier())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail without courier", func(t *testing.T) {
		o, err := order.NewOrder("Asha", "Metro City", weight, " ")

		require.ErrorIs(t, err, order.ErrCourierIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with blank customer name", func(t *testing.T) {
		_, err := order.NewOrder("", "Metro City", weight, "BlueDart")

		require.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
	})

	t.Run("should fail with blank destination", func(t *testing.T) {
		_, err := order.NewOrder("Asha", "   ", weight, "BlueDart")

		require.ErrorIs(t, err, order.ErrDestinationIsRequired)
	})

	t.Run("should fail with unconstructed weight", func(t *testing.T) {
		_, err := order.NewOrder("Asha", "Metro City", kernel.Weight{}, "BlueDart")

		require.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder("", "", kernel.Weight{}, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer_name")
		assert.Contains(t, err.Error(), "destination")
		assert.Contains(t, err.Error(), "courier")
	})
}

func TestRestoreOrder(t *testing.T) {
	weight := kernel.MustNewWeight(15)

	t.Run("should restore stored order", func(t *testing.T) {
		o, err := order.RestoreOrder(3, "Ravi", "Urban Zone", weight, "Delhivery", order.InTransit)

		require.NoError(t, err)
		assert.Equal(t, int64(3), o.ID())
		assert.Equal(t, order.InTransit, o.Status())
	})

	t.Run("should keep free-form legacy status", func(t *testing.T) {
		o, err := order.RestoreOrder(4, "Ravi", "Urban Zone", weight, "Delhivery", "Shipped")

		require.NoError(t, err)
		assert.Equal(t, order.Status("Shipped"), o.Status())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		_, err := order.RestoreOrder(0, "Ravi", "Urban Zone", weight, "Delhivery", order.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with blank status", func(t *testing.T) {
		_, err := order.RestoreOrder(5, "Ravi", "Urban Zone", weight, "Delhivery", "")

		require.ErrorIs(t, err, order.ErrStatusIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_BindID(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("Asha", "Metro City", kernel.MustNewWeight(8), "BlueDart")
		require.NoError(t, err)
		return o
	}

	t.Run("should bind id once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.BindID(12))
		assert.Equal(t, int64(12), o.ID())

		err := o.BindID(13)
		require.ErrorIs(t, err, order.ErrIDIsAlreadyBound)
		assert.Equal(t, int64(12), o.ID())
	})

	t.Run("should reject negative id", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.BindID(-1), errs.ErrValueIsInvalid)
		assert.Zero(t, o.ID())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("Asha", "Metro City", kernel.MustNewWeight(8), "BlueDart")
		require.NoError(t, err)
		return o
	}

	t.Run("should walk the full lifecycle in strict mode", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.InTransit, order.StrictTransitions))
		require.NoError(t, o.ChangeStatus(order.Delivered, order.StrictTransitions))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should keep status on rejected transition", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled, order.StrictTransitions))

		err := o.ChangeStatus(order.InTransit, order.StrictTransitions)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should accept arbitrary status in legacy mode", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus("Out for delivery", order.LegacyTransitions))
		assert.Equal(t, order.Status("Out for delivery"), o.Status())
	})

	t.Run("should not change courier", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Delivered, order.StrictTransitions))
		assert.Equal(t, "BlueDart", o.Courier())
	})

	t.Run("should fail on unconstructed order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.ChangeStatus(order.InTransit, order.StrictTransitions))
	})
}
