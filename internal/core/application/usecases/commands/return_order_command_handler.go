package commands

import (
	"context"
	"time"
)

// ReturnOrderCommandHandler marks an order as RETURNED with the recorded
// return date. RETURNED is terminal and fully locked: the date can never be
// edited afterwards.
type ReturnOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(uowFactory OrderUoWFactory) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return. Manager roles only.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().IsManager() {
		return permissionDenied("mark orders as returned", cmd.Actor().Role())
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

	if err = aggregate.Return(cmd.ReturnDate(), cmd.Actor().Name(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
