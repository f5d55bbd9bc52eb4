package account_test

import (
	"testing"

	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("all roles are valid and distinct", func(t *testing.T) {
		seen := make(map[account.Role]struct{})
		for _, r := range account.AllRoles() {
			assert.NoError(t, r.Validate())
			seen[r] = struct{}{}
		}
		assert.Len(t, seen, 7)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		require.Error(t, account.RoleUnknown.Validate())
		require.Error(t, account.Role("GUDANG").Validate())

		_, err := account.RoleFromString("admin")
		require.Error(t, err)
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Super Admin", account.RoleSuperAdmin.Label())
		assert.Equal(t, "Admin Marketplace", account.RoleAdminMarketplace.Label())
		assert.Equal(t, "Tim Setting (Design)", account.RoleSetting.Label())
		assert.Equal(t, "Tim Packing & Shipping", account.RolePacking.Label())
	})

	t.Run("management predicates", func(t *testing.T) {
		assert.True(t, account.RoleSuperAdmin.IsSuperAdmin())
		assert.True(t, account.RoleSuperAdmin.IsManager())

		assert.False(t, account.RoleAdminMarketplace.IsSuperAdmin())
		assert.True(t, account.RoleAdminMarketplace.IsManager())

		for _, r := range []account.Role{
			account.RoleSetting, account.RolePrint, account.RolePress,
			account.RoleJahit, account.RolePacking,
		} {
			assert.False(t, r.IsSuperAdmin(), "%s", r)
			assert.False(t, r.IsManager(), "%s", r)
		}
	})

	t.Run("worker roles map to their department", func(t *testing.T) {
		cases := map[account.Role]order.Department{
			account.RoleSetting: order.DepartmentSetting,
			account.RolePrint:   order.DepartmentPrint,
			account.RolePress:   order.DepartmentPress,
			account.RoleJahit:   order.DepartmentJahit,
			account.RolePacking: order.DepartmentPacking,
		}

		for r, want := range cases {
			got, err := r.Department()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		_, err := account.RoleSuperAdmin.Department()
		require.Error(t, err)
		_, err = account.RoleAdminMarketplace.Department()
		require.Error(t, err)
	})

	t.Run("operation rights per department", func(t *testing.T) {
		for _, d := range order.AllDepartments() {
			assert.True(t, account.RoleSuperAdmin.MayOperate(d))
			assert.False(t, account.RoleAdminMarketplace.MayOperate(d))
		}

		assert.True(t, account.RolePress.MayOperate(order.DepartmentPress))
		assert.False(t, account.RolePress.MayOperate(order.DepartmentJahit))
		assert.False(t, account.RolePacking.MayOperate(order.DepartmentSetting))
	})
}

func TestNewAccount(t *testing.T) {
	t.Run("creates an account", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.NewAccount(id, "budi", "$2a$10$hash", account.RolePress, "Budi Press")

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "budi", a.Login())
		assert.Equal(t, "$2a$10$hash", a.PasswordHash())
		assert.Equal(t, account.RolePress, a.Role())
		assert.Equal(t, "Budi Press", a.DisplayName())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		cases := []struct {
			name        string
			login       string
			hash        string
			role        account.Role
			displayName string
		}{
			{"missing login", "", "h", account.RolePress, "Budi"},
			{"missing password hash", "budi", "", account.RolePress, "Budi"},
			{"invalid role", "budi", "h", account.RoleUnknown, "Budi"},
			{"missing display name", "budi", "h", account.RolePress, ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := account.NewAccount(kernel.NewUUID(), tc.login, tc.hash, tc.role, tc.displayName)
				require.Error(t, err)
			})
		}
	})
}

func TestAccount_Validate(t *testing.T) {
	var zero account.Account
	require.ErrorIs(t, zero.Validate(), account.ErrAccountIsNotConstructed)

	var nilAccount *account.Account
	require.ErrorIs(t, nilAccount.Validate(), account.ErrAccountIsNotConstructed)
}

func TestAccount_ChangePassword(t *testing.T) {
	a, err := account.NewAccount(kernel.NewUUID(), "sari", "old-hash", account.RoleAdminMarketplace, "Sari")
	require.NoError(t, err)

	require.NoError(t, a.ChangePassword("new-hash"))
	assert.Equal(t, "new-hash", a.PasswordHash())

	require.Error(t, a.ChangePassword(""))
	assert.Equal(t, "new-hash", a.PasswordHash())
}
