package order_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustPercentage(t *testing.T, s string) kernel.Percentage {
	t.Helper()
	p, err := kernel.PercentageFromString(s)
	require.NoError(t, err)
	return p
}

func testDriver(t *testing.T, available bool) account.Account {
	t.Helper()
	a, err := account.NewAccount(
		kernel.NewUUID(), "Test Driver", "0100000001",
		account.RoleDriver, mustPercentage(t, "10"), true, true, available,
	)
	require.NoError(t, err)
	return a
}

func testAdmin(t *testing.T) account.Account {
	t.Helper()
	a, err := account.NewAccount(
		kernel.NewUUID(), "Admin", "0100000002",
		account.RoleAdmin, kernel.ZeroPercentage(), true, true, false,
	)
	require.NoError(t, err)
	return a
}

func testShopAccount(t *testing.T) account.Account {
	t.Helper()
	a, err := account.NewAccount(
		kernel.NewUUID(), "Shop", "0100000003",
		account.RoleShop, mustPercentage(t, "10"), true, true, false,
	)
	require.NoError(t, err)
	return a
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Customer", "0123456789", "12 Side Street",
		mustMoney(t, "50.00"), mustMoney(t, "100.00"),
		kernel.NewUUID(),
		"",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with zero snapshot", func(t *testing.T) {
		addedBy := kernel.NewUUID()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			"Customer", "0123456789", "12 Side Street",
			mustMoney(t, "50.00"), mustMoney(t, "100.00"),
			addedBy,
			"leave at the door",
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		require.NotNil(t, o.AddedBy())
		assert.True(t, o.AddedBy().IsEqual(addedBy))
		assert.Nil(t, o.DeliveryBy())
		assert.True(t, o.ApplicationFee().Amount().IsZero())
		assert.True(t, o.ApplicationPercentage().Rate().IsZero())
		assert.Equal(t, "leave at the door", o.Notes())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("fails without customer name", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", "0123456789", "addr",
			mustMoney(t, "1"), mustMoney(t, "1"), kernel.NewUUID(), "",
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails without customer phone", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "Customer", "", "addr",
			mustMoney(t, "1"), mustMoney(t, "1"), kernel.NewUUID(), "",
		)

		require.Error(t, err)
	})

	t.Run("fails without customer address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "Customer", "0123456789", "",
			mustMoney(t, "1"), mustMoney(t, "1"), kernel.NewUUID(), "",
		)

		require.Error(t, err)
	})

	t.Run("fails with unconstructed money", func(t *testing.T) {
		var fee kernel.Money

		_, err := order.NewOrder(
			kernel.NewUUID(), "Customer", "0123456789", "addr",
			fee, mustMoney(t, "1"), kernel.NewUUID(), "",
		)

		require.Error(t, err)
	})
}

func TestOrderValidate(t *testing.T) {
	var o *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())

	zero := &order.Order{}
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrderSnapshotCommission(t *testing.T) {
	o := newPendingOrder(t)
	rate := mustPercentage(t, "10")
	fee := mustMoney(t, "5.00")

	require.NoError(t, o.SnapshotCommission(rate, fee))

	assert.True(t, o.ApplicationPercentage().IsEqual(rate))
	assert.True(t, o.ApplicationFee().IsEqual(fee))

	t.Run("rejects unconstructed values", func(t *testing.T) {
		var badRate kernel.Percentage
		require.Error(t, o.SnapshotCommission(badRate, fee))
	})
}

func TestOrderAccept(t *testing.T) {
	t.Run("available driver accepts pending order", func(t *testing.T) {
		o := newPendingOrder(t)
		driver := testDriver(t, true)

		require.NoError(t, o.Accept(driver))

		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.DeliveryBy())
		assert.True(t, o.DeliveryBy().IsEqual(driver.ID()))
	})

	t.Run("non-driver is forbidden and order is unchanged", func(t *testing.T) {
		o := newPendingOrder(t)
		shop := testShopAccount(t)

		err := o.Accept(shop)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryBy())
	})

	t.Run("busy driver is forbidden and order is unchanged", func(t *testing.T) {
		o := newPendingOrder(t)
		driver := testDriver(t, false)

		err := o.Accept(driver)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryBy())
	})

	t.Run("accepted order cannot be accepted again", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))

		err := o.Accept(testDriver(t, true))
		require.Error(t, err)
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrderComplete(t *testing.T) {
	t.Run("accepted order completes", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("pending order cannot complete", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.Complete())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("completed order stays completed", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))
		require.NoError(t, o.Complete())

		require.Error(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrderCancel(t *testing.T) {
	t.Run("admin cancels pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel(testAdmin(t)))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("admin cancels accepted order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))

		require.NoError(t, o.Cancel(testAdmin(t)))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("non-admin cannot cancel", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Cancel(testDriver(t, true))
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancelled order is terminal", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel(testAdmin(t)))

		require.Error(t, o.Cancel(testAdmin(t)))
		require.Error(t, o.Complete())
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrderApplyStatus(t *testing.T) {
	t.Run("routes to accept", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ApplyStatus(order.Accepted, testDriver(t, true)))
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("routes to complete", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))

		require.NoError(t, o.ApplyStatus(order.Completed, testAdmin(t)))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("routes to cancel", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ApplyStatus(order.Cancelled, testAdmin(t)))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("rejects pending target", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))

		require.Error(t, o.ApplyStatus(order.Pending, testAdmin(t)))
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.ApplyStatus(order.Status(9), testAdmin(t)))
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	addedBy := kernel.NewUUID()
	deliveryBy := kernel.NewUUID()
	now := time.Now().UTC()

	o, err := order.RestoreOrder(
		id,
		"Customer", "0123456789", "addr",
		mustMoney(t, "50.00"), mustMoney(t, "100.00"),
		order.Accepted,
		&addedBy, &deliveryBy,
		mustPercentage(t, "10"), mustMoney(t, "5.00"),
		"notes",
		3,
		now, now,
	)

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.Equal(t, order.Accepted, o.Status())
	assert.Equal(t, int64(3), o.Version())
	assert.True(t, o.DeliveryBy().IsEqual(deliveryBy))

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, "Customer", "0123456789", "addr",
			mustMoney(t, "50.00"), mustMoney(t, "100.00"),
			order.Status(9), &addedBy, nil,
			mustPercentage(t, "10"), mustMoney(t, "5.00"),
			"", 0, now, now,
		)
		require.Error(t, err)
	})
}

func TestOrderEvents(t *testing.T) {
	t.Run("created event targets drivers", func(t *testing.T) {
		o := newPendingOrder(t)
		e := order.NewOrderCreatedEvent(o)

		assert.Equal(t, order.EventOrderCreated, e.Name)
		assert.Equal(t, account.RoleDriver, e.TargetRole)
		assert.Nil(t, e.TargetUserID)
		assert.Equal(t, order.NotifiableOrder, e.Notifiable.Kind)
		assert.True(t, e.Notifiable.ID.IsEqual(o.ID()))
		assert.Equal(t, order.Pending, e.Order.Status)
	})

	t.Run("accepted event targets the shop", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))

		e := order.NewOrderAcceptedEvent(o)

		assert.Equal(t, order.EventOrderAccepted, e.Name)
		assert.Equal(t, account.RoleShop, e.TargetRole)
		require.NotNil(t, e.TargetUserID)
		assert.True(t, e.TargetUserID.IsEqual(*o.AddedBy()))
		assert.NotNil(t, e.Order.DeliveryByID)
	})

	t.Run("delivered event carries completed status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(testDriver(t, true)))
		require.NoError(t, o.Complete())

		e := order.NewOrderDeliveredEvent(o)

		assert.Equal(t, order.EventOrderDelivered, e.Name)
		assert.Equal(t, order.Completed, e.Order.Status)
	})
}

func TestNotifiableRefs(t *testing.T) {
	id := kernel.NewUUID()

	assert.Equal(t, order.NotifiableNone, order.NoRef().Kind)
	assert.Equal(t, order.NotifiableOrder, order.OrderRef(id).Kind)
	assert.Equal(t, order.NotifiableComplaint, order.ComplaintRef(id).Kind)
	assert.Equal(t, order.NotifiableUser, order.UserRef(id).Kind)
	assert.True(t, order.UserRef(id).ID.IsEqual(id))
}
