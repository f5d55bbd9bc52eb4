package account

import (
	"fmt"

	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
)

// Role determines which views and operations an account can reach.
//
// SUPERADMIN and ADMIN_MARKETPLACE are management roles; the remaining
// five each correspond to one production department and only ever see
// that department's queue.
type Role string

const (
	RoleUnknown          Role = ""
	RoleSuperAdmin       Role = "SUPERADMIN"
	RoleAdminMarketplace Role = "ADMIN_MARKETPLACE"
	RoleSetting          Role = "SETTING"
	RolePrint            Role = "PRINT"
	RolePress            Role = "PRESS"
	RoleJahit            Role = "JAHIT"
	RolePacking          Role = "PACKING"
)

// AllRoles returns every valid role.
func AllRoles() []Role {
	return []Role{
		RoleSuperAdmin,
		RoleAdminMarketplace,
		RoleSetting,
		RolePrint,
		RolePress,
		RoleJahit,
		RolePacking,
	}
}

func getRoleLabels() map[Role]string {
	return map[Role]string{
		RoleSuperAdmin:       "Super Admin",
		RoleAdminMarketplace: "Admin Marketplace",
		RoleSetting:          "Tim Setting (Design)",
		RolePrint:            "Tim Print",
		RolePress:            "Tim Press",
		RoleJahit:            "Tim Jahit",
		RolePacking:          "Tim Packing & Shipping",
	}
}

// RoleFromString parses a role from its wire form.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return RoleUnknown, err
	}
	return r, nil
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if _, ok := getRoleLabels()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%q is not a known role", string(r)),
		)
	}
	return nil
}

func (r Role) String() string {
	if r.Validate() != nil {
		return "Unknown"
	}
	return string(r)
}

// Label returns the human-readable role name shown in the UI.
func (r Role) Label() string {
	return getRoleLabels()[r]
}

// IsSuperAdmin reports whether the role has full administrative power:
// order deletion, account registration, catalog writes, reports.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// IsManager reports whether the role manages orders: intake, cancel,
// return, status overrides, and the management views.
func (r Role) IsManager() bool {
	return r == RoleSuperAdmin || r == RoleAdminMarketplace
}

// Department returns the production department a worker role operates,
// or an error for management roles.
func (r Role) Department() (order.Department, error) {
	switch r {
	case RoleSetting:
		return order.DepartmentSetting, nil
	case RolePrint:
		return order.DepartmentPrint, nil
	case RolePress:
		return order.DepartmentPress, nil
	case RoleJahit:
		return order.DepartmentJahit, nil
	case RolePacking:
		return order.DepartmentPacking, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("role %s is not bound to a department", r),
	)
}

// MayOperate reports whether the role may start or complete work in the
// given department. SUPERADMIN may operate any queue; a worker role only
// its own.
func (r Role) MayOperate(d order.Department) bool {
	if r.IsSuperAdmin() {
		return true
	}
	own, err := r.Department()
	return err == nil && own == d
}
