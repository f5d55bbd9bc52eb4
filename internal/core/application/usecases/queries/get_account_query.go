package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var (
	ErrGetAccountQueryIsNotConstructed = errors.New(
		"GetAccountQuery must be created via NewGetAccountQuery constructor",
	)
	ErrGetAccountByLoginQueryIsNotConstructed = errors.New(
		"GetAccountByLoginQuery must be created via NewGetAccountByLoginQuery constructor",
	)
)

// AccountResponse is the account read model. PasswordHash is only populated
// by the login lookup and must never leave the server.
type AccountResponse struct {
	ID           kernel.UUID
	Login        string
	PasswordHash string
	Role         string
	RoleLabel    string
	DisplayName  string
}

// GetAccountQuery retrieves one account by its ID. Used on every
// authenticated request to resolve the acting role and display name.
type GetAccountQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query for an account lookup by ID.
func NewGetAccountQuery(accountID kernel.UUID) (GetAccountQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetAccountQuery{}, err
	}
	return GetAccountQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// AccountID returns the looked-up account ID.
func (q GetAccountQuery) AccountID() kernel.UUID { return q.accountID }

// GetAccountByLoginQuery retrieves one account by its login, credential
// hash included. Only the login flow uses it.
type GetAccountByLoginQuery struct {
	login string

	guard guard.ConstructorGuard
}

// NewGetAccountByLoginQuery creates a query for an account lookup by login.
func NewGetAccountByLoginQuery(login string) (GetAccountByLoginQuery, error) {
	if login == "" {
		return GetAccountByLoginQuery{}, errs.NewValueIsRequiredError("login")
	}
	return GetAccountByLoginQuery{
		login: login,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountByLoginQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountByLoginQueryIsNotConstructed)
}

// Login returns the looked-up login.
func (q GetAccountByLoginQuery) Login() string { return q.login }
