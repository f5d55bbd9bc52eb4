// Package account holds the users of the panel and their role-based
// permissions. Authentication itself (hashing, tokens) lives outside the
// domain; the aggregate only carries the stored credential.
package account

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount or RestoreAccount factory functions.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Account is a panel user: a unique login, a password hash, a role, and
// the display name written into order history entries.
type Account struct {
	id           kernel.UUID
	login        string
	passwordHash string
	role         Role
	displayName  string

	isConstructed bool
}

// NewAccount creates a new Account with validation. passwordHash must be
// an already-hashed credential, never the plain password.
func NewAccount(id kernel.UUID, login, passwordHash string, role Role, displayName string) (*Account, error) {
	a := &Account{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setLogin(login),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
		a.setDisplayName(displayName),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence.
func RestoreAccount(id kernel.UUID, login, passwordHash string, role Role, displayName string) (*Account, error) {
	return NewAccount(id, login, passwordHash, role, displayName)
}

// Validate ensures the Account was created through a factory function.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's identifier.
func (a *Account) ID() kernel.UUID { return a.id }

// Login returns the unique login name.
func (a *Account) Login() string { return a.login }

// PasswordHash returns the stored credential hash.
func (a *Account) PasswordHash() string { return a.passwordHash }

// Role returns the account's role.
func (a *Account) Role() Role { return a.role }

// DisplayName returns the name recorded as the actor in order history.
func (a *Account) DisplayName() string { return a.displayName }

// ChangePassword replaces the stored credential hash.
func (a *Account) ChangePassword(passwordHash string) error {
	return a.setPasswordHash(passwordHash)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setLogin(login string) error {
	if login == "" {
		return errs.NewValueIsRequiredError("login")
	}
	a.login = login
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setDisplayName(displayName string) error {
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	a.displayName = displayName
	return nil
}
