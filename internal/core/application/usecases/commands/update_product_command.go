package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/product"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents editing an existing catalog product.
// All fields are replaced; orders keep their name snapshot.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	category    product.Category
	image       string
	description string
	actor       Actor

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	category product.Category,
	image string,
	description string,
	actor Actor,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setActor(actor),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	cmd.image = image
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product being edited.
func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the new product name.
func (c UpdateProductCommand) Name() string { return c.name }

// Category returns the new garment category.
func (c UpdateProductCommand) Category() product.Category { return c.category }

// Image returns the new catalog image reference.
func (c UpdateProductCommand) Image() string { return c.image }

// Description returns the new free-text description.
func (c UpdateProductCommand) Description() string { return c.description }

// Actor returns who is editing the product.
func (c UpdateProductCommand) Actor() Actor { return c.actor }

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateProductCommand) setCategory(category product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *UpdateProductCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
