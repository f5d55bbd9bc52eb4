package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/product"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents adding a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	category    product.Category
	image       string
	description string
	actor       Actor

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Image and description are optional.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	category product.Category,
	image string,
	description string,
	actor Actor,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setActor(actor),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.image = image
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// Category returns the garment category.
func (c CreateProductCommand) Category() product.Category { return c.category }

// Image returns the optional catalog image reference.
func (c CreateProductCommand) Image() string { return c.image }

// Description returns the optional free-text description.
func (c CreateProductCommand) Description() string { return c.description }

// Actor returns who is adding the product.
func (c CreateProductCommand) Actor() Actor { return c.actor }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *CreateProductCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
