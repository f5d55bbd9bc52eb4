package commands_test

import (
	"testing"
	"time"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func superAdmin(t *testing.T) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(account.RoleSuperAdmin, "Super Admin")
	require.NoError(t, err)
	return actor
}

func marketplaceAdmin(t *testing.T) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(account.RoleAdminMarketplace, "Sari Admin")
	require.NoError(t, err)
	return actor
}

func workerActor(t *testing.T, role account.Role, name string) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(role, name)
	require.NoError(t, err)
	return actor
}

func pendingSettingOrder(t *testing.T) *order.Order {
	t.Helper()
	date, err := kernel.NewDate(2024, time.June, 5)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), "ERF-1001", "prod-42", "Jersey Racing Red", "L", 2,
		"Shopee Erfo.id", date, order.TypePreOrder, "Sari Admin", time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func catalogProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Jersey Racing Red", product.CategoryJersey, "", "")
	require.NoError(t, err)
	return p
}
