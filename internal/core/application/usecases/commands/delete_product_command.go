package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents removing a product from the catalog.
// Existing orders keep their product name snapshot.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	actor     Actor

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to remove a catalog product.
func NewDeleteProductCommand(productID kernel.UUID, actor Actor) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the product to remove.
func (c DeleteProductCommand) ProductID() kernel.UUID { return c.productID }

// Actor returns who is removing the product.
func (c DeleteProductCommand) Actor() Actor { return c.actor }

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *DeleteProductCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
