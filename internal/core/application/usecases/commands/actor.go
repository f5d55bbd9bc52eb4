package commands

import (
	"errors"
	"fmt"

	"production/internal/core/domain/model/account"
	"production/internal/pkg/errs"
)

// ErrPermissionDenied is returned when the acting account's role does not
// allow the requested operation. The HTTP layer maps it to 403.
var ErrPermissionDenied = errors.New("permission denied")

// Actor identifies who is executing a command: the account's role for
// authorization and the display name written into order history.
//
// Role checks happen in the command handlers, never in the transport layer
// alone, so a hand-crafted request cannot bypass them.
type Actor struct {
	role account.Role
	name string
}

// NewActor creates an Actor with validation.
func NewActor(role account.Role, name string) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if name == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor name")
	}
	return Actor{role: role, name: name}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	if a.name == "" {
		return errs.NewValueIsRequiredError("actor name")
	}
	return nil
}

// Role returns the acting account's role.
func (a Actor) Role() account.Role {
	return a.role
}

// Name returns the display name recorded into order history.
func (a Actor) Name() string {
	return a.name
}

func permissionDenied(operation string, role account.Role) error {
	return fmt.Errorf("%w: role %s may not %s", ErrPermissionDenied, role, operation)
}
