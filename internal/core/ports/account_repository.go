package ports

import (
	"context"

	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for panel accounts.
type AccountRepository interface {
	// Add persists a new account. The login must be unique.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByLogin retrieves an account by its login name.
	GetByLogin(ctx context.Context, login string) (*account.Account, error)
}
