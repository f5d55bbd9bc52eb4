package commands

import (
	"context"
	"errors"

	"production/internal/core/domain/model/account"
	"production/internal/pkg/errs"
)

// ErrLoginIsTaken is returned when the requested login already belongs to
// another account. The HTTP layer maps it to 409.
var ErrLoginIsTaken = errors.New("login is already taken")

// PasswordHasher turns a plain password into a storable hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// RegisterAccountCommandHandler creates panel accounts. The login uniqueness
// check and the insert run in one transaction.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory, hasher PasswordHasher) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration. Super admin only.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().IsSuperAdmin() {
		return permissionDenied("register accounts", cmd.Actor().Role())
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetByLogin(ctx, cmd.Login())
	switch {
	case err == nil:
		return ErrLoginIsTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	aggregate, err := account.NewAccount(
		cmd.AccountID(), cmd.Login(), passwordHash, cmd.Role(), cmd.DisplayName(),
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
