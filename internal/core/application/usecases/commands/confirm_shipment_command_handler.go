package commands

import (
	"context"
	"time"
)

// ConfirmShipmentCommandHandler closes a READY_TO_SHIP order as COMPLETED.
// Confirmation is a management act: the packing team only moves the order
// to READY_TO_SHIP.
type ConfirmShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmShipmentCommandHandler creates a handler for shipment confirmation.
func NewConfirmShipmentCommandHandler(uowFactory OrderUoWFactory) ConfirmShipmentCommandHandler {
	return ConfirmShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment confirmation. COMPLETED is terminal and the
// order's dates are locked from then on.
func (h *ConfirmShipmentCommandHandler) Handle(ctx context.Context, cmd ConfirmShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().IsManager() {
		return permissionDenied("confirm shipments", cmd.Actor().Role())
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

	if err = aggregate.ConfirmShipment(cmd.Actor().Name(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
