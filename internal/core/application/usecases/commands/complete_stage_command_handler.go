package commands

import (
	"context"
	"time"
)

// CompleteStageCommandHandler moves an order from a department's in-progress
// status to the next department's pending queue (READY_TO_SHIP after
// PACKING). Same authorization rule as starting a stage.
type CompleteStageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteStageCommandHandler creates a handler for completing stages.
func NewCompleteStageCommandHandler(uowFactory OrderUoWFactory) CompleteStageCommandHandler {
	return CompleteStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete stage command. Rejected when the order is
// not currently in progress with the department.
func (h *CompleteStageCommandHandler) Handle(ctx context.Context, cmd CompleteStageCommand) error {
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

	if err = aggregate.CompleteStage(cmd.Department(), cmd.Actor().Name(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
