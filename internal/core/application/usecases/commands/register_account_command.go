package commands

import (
	"errors"

	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// minPasswordLength keeps the workshop's shared-tablet logins from being a
// single character. There is no complexity policy beyond length.
const minPasswordLength = 6

// RegisterAccountCommand represents creating a panel account with a role.
// The password travels in plain form only as far as the handler, which
// hashes it before anything is persisted.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	login       string
	password    string
	role        account.Role
	displayName string
	actor       Actor

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register an account.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	login string,
	password string,
	role account.Role,
	displayName string,
	actor Actor,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setLogin(login),
		cmd.setPassword(password),
		cmd.setRole(role),
		cmd.setDisplayName(displayName),
		cmd.setActor(actor),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier assigned to the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID { return c.accountID }

// Login returns the unique login name.
func (c RegisterAccountCommand) Login() string { return c.login }

// Password returns the plain password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string { return c.password }

// Role returns the role granted to the account.
func (c RegisterAccountCommand) Role() account.Role { return c.role }

// DisplayName returns the name recorded as the actor in order history.
func (c RegisterAccountCommand) DisplayName() string { return c.displayName }

// Actor returns who is registering the account.
func (c RegisterAccountCommand) Actor() Actor { return c.actor }

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setLogin(login string) error {
	if login == "" {
		return errs.NewValueIsRequiredError("login")
	}
	c.login = login
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterAccountCommand) setDisplayName(displayName string) error {
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	c.displayName = displayName
	return nil
}

func (c *RegisterAccountCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
