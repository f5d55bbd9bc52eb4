package commands

import (
	"context"
	"time"
)

// SetStatusCommandHandler applies a manager's status override. The domain
// still refuses terminal sources, RETURNED targets, and no-op moves, so the
// override cannot break the audit invariants.
type SetStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetStatusCommandHandler creates a handler for status overrides.
func NewSetStatusCommandHandler(uowFactory OrderUoWFactory) SetStatusCommandHandler {
	return SetStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override. Manager roles only.
func (h *SetStatusCommandHandler) Handle(ctx context.Context, cmd SetStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().IsManager() {
		return permissionDenied("override order statuses", cmd.Actor().Role())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetStatus(cmd.Status(), cmd.Actor().Name(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
