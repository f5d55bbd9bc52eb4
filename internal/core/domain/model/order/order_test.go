package order_test

import (
	"testing"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderDate(t *testing.T) kernel.Date {
	t.Helper()
	d, err := kernel.DateFromString("2024-06-05")
	require.NoError(t, err)
	return d
}

func newTestOrder(t *testing.T, orderType order.Type) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ERF-1001",
		"prod-42",
		"Jersey Racing Red",
		"L",
		2,
		"Shopee Erfo.id",
		validOrderDate(t),
		orderType,
		"Admin Marketplace",
		time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("pre-order starts at pending setting with single-entry history", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		assert.Equal(t, order.StatusPendingSetting, o.Status())
		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.StatusPendingSetting, history[0].Status)
		assert.Equal(t, "Admin Marketplace", history[0].UpdatedBy)
	})

	t.Run("stock order skips production and starts at pending packing", func(t *testing.T) {
		o := newTestOrder(t, order.TypeStock)

		assert.Equal(t, order.StatusPendingPacking, o.Status())
		require.Len(t, o.History(), 1)
		assert.Equal(t, order.StatusPendingPacking, o.History()[0].Status)

		for _, dept := range []order.Department{
			order.DepartmentSetting,
			order.DepartmentPrint,
			order.DepartmentPress,
			order.DepartmentJahit,
		} {
			assert.False(t, dept.Owns(o.Status()), "stock order must not appear in %s queue", dept)
		}
		assert.True(t, order.DepartmentPacking.Owns(o.Status()))
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		now := time.Now()
		date := validOrderDate(t)

		cases := []struct {
			name       string
			externalID string
			productID  string
			product    string
			size       string
			qty        int
			market     string
			actor      string
		}{
			{"missing external id", "", "p", "Jersey", "L", 1, "Shopee", "admin"},
			{"missing product id", "ERF-1", "", "Jersey", "L", 1, "Shopee", "admin"},
			{"missing product name", "ERF-1", "p", "", "L", 1, "Shopee", "admin"},
			{"missing size", "ERF-1", "p", "Jersey", "", 1, "Shopee", "admin"},
			{"zero quantity", "ERF-1", "p", "Jersey", "L", 0, "Shopee", "admin"},
			{"negative quantity", "ERF-1", "p", "Jersey", "L", -3, "Shopee", "admin"},
			{"missing marketplace", "ERF-1", "p", "Jersey", "L", 1, "", "admin"},
			{"missing actor", "ERF-1", "p", "Jersey", "L", 1, "Shopee", ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(
					kernel.NewUUID(), tc.externalID, tc.productID, tc.product,
					tc.size, tc.qty, tc.market, date, order.TypePreOrder, tc.actor, now,
				)
				require.Error(t, err)
			})
		}
	})

	t.Run("rejects invalid order date", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ERF-1", "p", "Jersey", "L", 1, "Shopee",
			kernel.Date{}, order.TypePreOrder, "admin", time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t, order.TypePreOrder).Validate())
	})

	t.Run("zero value order is rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ForwardTransitions(t *testing.T) {
	now := time.Date(2024, time.June, 6, 8, 0, 0, 0, time.UTC)

	t.Run("setting operator starts and completes the first stage", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		require.NoError(t, o.StartStage(order.DepartmentSetting, "Budi Setting", now))
		assert.Equal(t, order.StatusInSetting, o.Status())
		assert.Len(t, o.History(), 2)

		require.NoError(t, o.CompleteStage(order.DepartmentSetting, "Budi Setting", now.Add(time.Hour)))
		assert.Equal(t, order.StatusPendingPrint, o.Status())

		history := o.History()
		require.Len(t, history, 3)
		assert.Equal(t, order.StatusPendingPrint, history[2].Status)
		assert.Equal(t, "Budi Setting", history[2].UpdatedBy)
	})

	t.Run("start is rejected unless the order is pending for the department", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		require.Error(t, o.StartStage(order.DepartmentPrint, "Op Print", now))
		assert.Equal(t, order.StatusPendingSetting, o.Status())
		assert.Len(t, o.History(), 1)
	})

	t.Run("complete is rejected straight from pending", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		require.Error(t, o.CompleteStage(order.DepartmentSetting, "Budi Setting", now))
		assert.Equal(t, order.StatusPendingSetting, o.Status())
	})

	t.Run("full pipeline walk ends at ready to ship", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)
		moment := now

		for _, dept := range order.AllDepartments() {
			require.NoError(t, o.StartStage(dept, "operator", moment))
			moment = moment.Add(time.Hour)
			require.NoError(t, o.CompleteStage(dept, "operator", moment))
			moment = moment.Add(time.Hour)
		}

		assert.Equal(t, order.StatusReadyToShip, o.Status())
		// creation + 5 starts + 5 completes
		assert.Len(t, o.History(), 11)
	})
}

func TestOrder_ConfirmShipment(t *testing.T) {
	now := time.Now()

	t.Run("confirms from ready to ship", func(t *testing.T) {
		o := newTestOrder(t, order.TypeStock)
		require.NoError(t, o.StartStage(order.DepartmentPacking, "packer", now))
		require.NoError(t, o.CompleteStage(order.DepartmentPacking, "packer", now))

		require.NoError(t, o.ConfirmShipment("Super Admin", now))

		assert.Equal(t, order.StatusCompleted, o.Status())
		history := o.History()
		assert.Equal(t, order.StatusCompleted, history[len(history)-1].Status)
	})

	t.Run("rejected before packing handoff", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)
		require.Error(t, o.ConfirmShipment("Super Admin", now))
	})
}

func TestOrder_Cancel(t *testing.T) {
	now := time.Now()

	t.Run("cancel mid-pipeline locks the order", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)
		require.NoError(t, o.StartStage(order.DepartmentSetting, "op", now))
		require.NoError(t, o.CompleteStage(order.DepartmentSetting, "op", now))
		require.NoError(t, o.StartStage(order.DepartmentPrint, "op", now))
		require.NoError(t, o.CompleteStage(order.DepartmentPrint, "op", now))
		require.NoError(t, o.StartStage(order.DepartmentPress, "op", now))
		require.Equal(t, order.StatusInPress, o.Status())

		historyBefore := len(o.History())
		require.NoError(t, o.Cancel("Super Admin", now))

		assert.Equal(t, order.StatusCanceled, o.Status())
		assert.Len(t, o.History(), historyBefore+1)

		require.Error(t, o.StartStage(order.DepartmentPress, "op", now))
		require.Error(t, o.CompleteStage(order.DepartmentPress, "op", now))
		require.Error(t, o.Cancel("Super Admin", now))
		assert.Len(t, o.History(), historyBefore+1)
	})
}

func TestOrder_Return(t *testing.T) {
	now := time.Now()
	returnDate, err := kernel.DateFromString("2024-06-12")
	require.NoError(t, err)

	t.Run("return records the supplied date exactly", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		require.NoError(t, o.Return(returnDate, "Super Admin", now))

		assert.Equal(t, order.StatusReturned, o.Status())
		require.NotNil(t, o.ReturnDate())
		assert.True(t, o.ReturnDate().IsEqual(returnDate))
	})

	t.Run("return without a date is rejected before any change", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		err := o.Return(kernel.Date{}, "Super Admin", now)

		require.ErrorIs(t, err, order.ErrReturnDateIsRequired)
		assert.Equal(t, order.StatusPendingSetting, o.Status())
		assert.Nil(t, o.ReturnDate())
		assert.Len(t, o.History(), 1)
	})

	t.Run("returned orders are locked against all edits", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)
		require.NoError(t, o.Return(returnDate, "Super Admin", now))

		require.Error(t, o.StartStage(order.DepartmentSetting, "op", now))
		require.Error(t, o.Cancel("Super Admin", now))
		require.Error(t, o.Return(returnDate, "Super Admin", now))
		require.Error(t, o.SetStatus(order.StatusPendingPrint, "Super Admin", now))
	})
}

func TestOrder_SetStatus(t *testing.T) {
	now := time.Now()

	t.Run("manager override moves the order and appends history", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		require.NoError(t, o.SetStatus(order.StatusPendingJahit, "Super Admin", now))

		assert.Equal(t, order.StatusPendingJahit, o.Status())
		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.StatusPendingJahit, history[1].Status)
		assert.Equal(t, "Super Admin", history[1].UpdatedBy)
	})

	t.Run("override to returned must go through Return", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		err := o.SetStatus(order.StatusReturned, "Super Admin", now)

		require.ErrorIs(t, err, order.ErrReturnDateIsRequired)
		assert.Equal(t, order.StatusPendingSetting, o.Status())
	})

	t.Run("override rejects terminal sources and no-op targets", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)
		require.Error(t, o.SetStatus(order.StatusPendingSetting, "Super Admin", now))

		require.NoError(t, o.Cancel("Super Admin", now))
		require.Error(t, o.SetStatus(order.StatusPendingSetting, "Super Admin", now))
	})
}

func TestOrder_HistoryInvariants(t *testing.T) {
	now := time.Now()

	t.Run("history grows by one per transition and tracks status", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)
		transitions := 0

		step := func(fn func() error) {
			require.NoError(t, fn())
			transitions++
			history := o.History()
			assert.Len(t, history, transitions+1)
			assert.Equal(t, o.Status(), history[len(history)-1].Status)
		}

		step(func() error { return o.StartStage(order.DepartmentSetting, "op", now) })
		step(func() error { return o.CompleteStage(order.DepartmentSetting, "op", now) })
		step(func() error { return o.SetStatus(order.StatusPendingPacking, "Super Admin", now) })
		step(func() error { return o.StartStage(order.DepartmentPacking, "packer", now) })
		step(func() error { return o.CompleteStage(order.DepartmentPacking, "packer", now) })
		step(func() error { return o.ConfirmShipment("Super Admin", now) })
	})

	t.Run("history getter returns a defensive copy", func(t *testing.T) {
		o := newTestOrder(t, order.TypePreOrder)

		history := o.History()
		history[0].UpdatedBy = "tampered"

		assert.Equal(t, "Admin Marketplace", o.History()[0].UpdatedBy)
	})
}

func TestRestoreOrder(t *testing.T) {
	date := func(s string) kernel.Date {
		d, err := kernel.DateFromString(s)
		require.NoError(t, err)
		return d
	}
	now := time.Now()

	t.Run("round trips a live order", func(t *testing.T) {
		original := newTestOrder(t, order.TypePreOrder)
		original.SetExpedition("J&T")
		original.SetTrackingNumber("JT123456")
		original.SetCustomization("RAMOS", "19")
		require.NoError(t, original.StartStage(order.DepartmentSetting, "op", now))

		restored, err := order.RestoreOrder(
			original.ID(),
			original.ExternalID(),
			original.ProductID(),
			original.ProductName(),
			original.Size(),
			original.Quantity(),
			original.BackName(),
			original.BackNumber(),
			original.Marketplace(),
			original.Expedition(),
			original.TrackingNumber(),
			original.OrderDate(),
			original.Type(),
			original.Status(),
			original.ReturnDate(),
			original.History(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		assert.Equal(t, original.History(), restored.History())
		assert.Equal(t, "RAMOS", restored.BackName())
		assert.Equal(t, "JT123456", restored.TrackingNumber())
	})

	t.Run("rejects empty history", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ERF-1", "p", "Jersey", "L", 1, "", "", "Shopee", "", "",
			date("2024-06-05"), order.TypePreOrder, order.StatusPendingSetting, nil, nil,
		)
		require.ErrorIs(t, err, order.ErrHistoryIsCorrupted)
	})

	t.Run("rejects history out of sync with status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ERF-1", "p", "Jersey", "L", 1, "", "", "Shopee", "", "",
			date("2024-06-05"), order.TypePreOrder, order.StatusInSetting, nil,
			[]order.HistoryEntry{{Status: order.StatusPendingSetting, UpdatedBy: "admin", UpdatedAt: now}},
		)
		require.ErrorIs(t, err, order.ErrHistoryIsCorrupted)
	})

	t.Run("rejects returned order without return date", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ERF-1", "p", "Jersey", "L", 1, "", "", "Shopee", "", "",
			date("2024-06-05"), order.TypePreOrder, order.StatusReturned, nil,
			[]order.HistoryEntry{
				{Status: order.StatusPendingSetting, UpdatedBy: "admin", UpdatedAt: now},
				{Status: order.StatusReturned, UpdatedBy: "admin", UpdatedAt: now},
			},
		)
		require.ErrorIs(t, err, order.ErrReturnDateIsRequired)
	})
}
