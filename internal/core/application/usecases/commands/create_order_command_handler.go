package commands

import (
	"context"
	"time"

	"production/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order intake. Only management roles may
// create orders. The catalog product is read inside the same transaction so
// the name snapshot cannot race a concurrent rename.
type CreateOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderProductUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The order starts in the
// initial status dictated by its type, with a single history entry stamped
// with the acting user.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().IsManager() {
		return permissionDenied("create orders", cmd.Actor().Role())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ExternalID(),
		product.ID().String(),
		product.Name(),
		cmd.Size(),
		cmd.Quantity(),
		cmd.Marketplace(),
		cmd.OrderDate(),
		cmd.OrderType(),
		cmd.Actor().Name(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	aggregate.SetExpedition(cmd.Expedition())
	aggregate.SetCustomization(cmd.BackName(), cmd.BackNumber())

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
