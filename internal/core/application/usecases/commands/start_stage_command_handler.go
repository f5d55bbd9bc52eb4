package commands

import (
	"context"
	"time"
)

// StartStageCommandHandler moves an order from a department's pending
// status into work. Workers may only operate their own department's queue;
// the super admin may operate any queue.
type StartStageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartStageCommandHandler creates a handler for starting stages.
func NewStartStageCommandHandler(uowFactory OrderUoWFactory) StartStageCommandHandler {
	return StartStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start stage command. The transition is rejected when
// the order is not pending for the department; the check happens on the
// freshly loaded aggregate inside the transaction.
func (h *StartStageCommandHandler) Handle(ctx context.Context, cmd StartStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().MayOperate(cmd.Department()) {
		return permissionDenied("operate the "+cmd.Department().String()+" queue", cmd.Actor().Role())
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

	if err = aggregate.StartStage(cmd.Department(), cmd.Actor().Name(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
