package commands

import (
	"context"
)

// DeleteProductCommandHandler removes a product from the catalog.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for catalog removals.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog removal. Super admin only.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().IsSuperAdmin() {
		return permissionDenied("edit the catalog", cmd.Actor().Role())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	if _, err := productRepo.Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
