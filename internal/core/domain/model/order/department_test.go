package order_test

import (
	"testing"

	"production/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartment_Stage(t *testing.T) {
	t.Run("should expose the fixed stage table", func(t *testing.T) {
		expected := map[order.Department]order.Stage{
			order.DepartmentSetting: {
				Pending:    order.StatusPendingSetting,
				InProgress: order.StatusInSetting,
				Next:       order.StatusPendingPrint,
			},
			order.DepartmentPrint: {
				Pending:    order.StatusPendingPrint,
				InProgress: order.StatusInPrint,
				Next:       order.StatusPendingPress,
			},
			order.DepartmentPress: {
				Pending:    order.StatusPendingPress,
				InProgress: order.StatusInPress,
				Next:       order.StatusPendingJahit,
			},
			order.DepartmentJahit: {
				Pending:    order.StatusPendingJahit,
				InProgress: order.StatusInJahit,
				Next:       order.StatusPendingPacking,
			},
			order.DepartmentPacking: {
				Pending:    order.StatusPendingPacking,
				InProgress: order.StatusInPacking,
				Next:       order.StatusReadyToShip,
			},
		}

		for dept, want := range expected {
			stage, err := dept.Stage()
			require.NoError(t, err)
			assert.Equal(t, want, stage, "stage triple for %s", dept)
		}
	})

	t.Run("should chain departments into one pipeline", func(t *testing.T) {
		departments := order.AllDepartments()
		require.Len(t, departments, 5)

		for i := 0; i < len(departments)-1; i++ {
			current, err := departments[i].Stage()
			require.NoError(t, err)
			next, err := departments[i+1].Stage()
			require.NoError(t, err)

			assert.Equal(t, next.Pending, current.Next,
				"%s should hand off to %s", departments[i], departments[i+1])
		}
	})

	t.Run("should reject unknown department", func(t *testing.T) {
		_, err := order.Department("WAREHOUSE").Stage()
		require.Error(t, err)

		_, err = order.DepartmentFromString("warehouse")
		require.Error(t, err)
	})
}

func TestDepartment_Start(t *testing.T) {
	t.Run("should start from the pending status", func(t *testing.T) {
		newStatus, err := order.DepartmentSetting.Start(order.StatusPendingSetting)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInSetting, newStatus)
	})

	t.Run("should reject start from any other status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			if status == order.StatusPendingPrint {
				continue
			}
			_, err := order.DepartmentPrint.Start(status)
			require.Error(t, err, "start from %s should fail", status)
		}
	})
}

func TestDepartment_Complete(t *testing.T) {
	t.Run("should complete from the in-progress status", func(t *testing.T) {
		newStatus, err := order.DepartmentJahit.Complete(order.StatusInJahit)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPendingPacking, newStatus)
	})

	t.Run("should hand packing off to ready to ship", func(t *testing.T) {
		newStatus, err := order.DepartmentPacking.Complete(order.StatusInPacking)

		require.NoError(t, err)
		assert.Equal(t, order.StatusReadyToShip, newStatus)
	})

	t.Run("should reject complete straight from pending", func(t *testing.T) {
		_, err := order.DepartmentPress.Complete(order.StatusPendingPress)
		require.Error(t, err)
	})
}

func TestDepartment_Owns(t *testing.T) {
	t.Run("queue contains exactly pending and in-progress", func(t *testing.T) {
		for _, dept := range order.AllDepartments() {
			stage, err := dept.Stage()
			require.NoError(t, err)

			for _, status := range order.AllStatuses() {
				expected := status == stage.Pending || status == stage.InProgress
				assert.Equal(t, expected, dept.Owns(status),
					"%s owning %s", dept, status)
			}
		}
	})

	t.Run("unknown department owns nothing", func(t *testing.T) {
		assert.False(t, order.Department("WAREHOUSE").Owns(order.StatusPendingSetting))
	})
}

func TestType(t *testing.T) {
	t.Run("should validate known types", func(t *testing.T) {
		require.NoError(t, order.TypePreOrder.Validate())
		require.NoError(t, order.TypeStock.Validate())
	})

	t.Run("should reject unknown types", func(t *testing.T) {
		_, err := order.TypeFromString("BACKORDER")
		require.Error(t, err)
	})

	t.Run("stock orders skip production", func(t *testing.T) {
		assert.Equal(t, order.StatusPendingPacking, order.TypeStock.InitialStatus())
	})

	t.Run("pre-orders enter at setting", func(t *testing.T) {
		assert.Equal(t, order.StatusPendingSetting, order.TypePreOrder.InitialStatus())
	})

	t.Run("export labels", func(t *testing.T) {
		assert.Equal(t, "Stok", order.TypeStock.Label())
		assert.Equal(t, "Produksi", order.TypePreOrder.Label())
	})
}
