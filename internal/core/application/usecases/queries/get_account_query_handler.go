package queries

import (
	"context"
	"database/sql"
	"errors"

	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountQueryHandler resolves accounts by ID.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for account lookups by ID.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the account lookup. The credential hash is left empty.
func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, login, role, display_name
		FROM accounts
		WHERE id = ?
	`, query.AccountID().Bytes()).Row()

	var (
		id          uuid.UUID
		login       string
		role        string
		displayName string
	)
	if err := row.Scan(&id, &login, &role, &displayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccountResponse{}, errs.NewObjectNotFoundError("account", query.AccountID().String())
		}
		return AccountResponse{}, err
	}

	return buildAccountResponse(id, login, "", role, displayName)
}

// GetAccountByLoginQueryHandler resolves accounts by login for the login flow.
type GetAccountByLoginQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountByLoginQueryHandler creates a handler for login lookups.
func NewGetAccountByLoginQueryHandler(db *gorm.DB) GetAccountByLoginQueryHandler {
	return GetAccountByLoginQueryHandler{db: db}
}

// Handle executes the login lookup, credential hash included.
func (h GetAccountByLoginQueryHandler) Handle(ctx context.Context, query GetAccountByLoginQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, login, password_hash, role, display_name
		FROM accounts
		WHERE login = ?
	`, query.Login()).Row()

	var (
		id           uuid.UUID
		login        string
		passwordHash string
		role         string
		displayName  string
	)
	if err := row.Scan(&id, &login, &passwordHash, &role, &displayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccountResponse{}, errs.NewObjectNotFoundError("login", query.Login())
		}
		return AccountResponse{}, err
	}

	return buildAccountResponse(id, login, passwordHash, role, displayName)
}

func buildAccountResponse(id uuid.UUID, login, passwordHash, rawRole, displayName string) (AccountResponse, error) {
	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AccountResponse{}, err
	}

	role, err := account.RoleFromString(rawRole)
	if err != nil {
		return AccountResponse{}, err
	}

	return AccountResponse{
		ID:           accountID,
		Login:        login,
		PasswordHash: passwordHash,
		Role:         role.String(),
		RoleLabel:    role.Label(),
		DisplayName:  displayName,
	}, nil
}
