package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order from the
// intake form. The product is referenced by catalog ID; its name is
// snapshotted onto the order by the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	externalID  string
	productID   kernel.UUID
	size        string
	quantity    int
	backName    string
	backNumber  string
	marketplace string
	expedition  string
	orderDate   kernel.Date
	orderType   order.Type
	actor       Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Back name, back number, and expedition are optional; everything else is
// validated here so a malformed request never reaches the domain.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	externalID string,
	productID kernel.UUID,
	size string,
	quantity int,
	backName string,
	backNumber string,
	marketplace string,
	expedition string,
	orderDate kernel.Date,
	orderType order.Type,
	actor Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setExternalID(externalID),
		cmd.setProductID(productID),
		cmd.setSize(size),
		cmd.setQuantity(quantity),
		cmd.setMarketplace(marketplace),
		cmd.setOrderDate(orderDate),
		cmd.setType(orderType),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.backName = backName
	cmd.backNumber = backNumber
	cmd.expedition = expedition

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ExternalID returns the marketplace-assigned order number.
func (c CreateOrderCommand) ExternalID() string { return c.externalID }

// ProductID returns the catalog product to snapshot.
func (c CreateOrderCommand) ProductID() kernel.UUID { return c.productID }

// Size returns the garment size.
func (c CreateOrderCommand) Size() string { return c.size }

// Quantity returns the number of pieces.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// BackName returns the optional jersey back-name customization.
func (c CreateOrderCommand) BackName() string { return c.backName }

// BackNumber returns the optional jersey back-number customization.
func (c CreateOrderCommand) BackNumber() string { return c.backNumber }

// Marketplace returns the sales channel.
func (c CreateOrderCommand) Marketplace() string { return c.marketplace }

// Expedition returns the optional courier service name.
func (c CreateOrderCommand) Expedition() string { return c.expedition }

// OrderDate returns the calendar date the order was placed.
func (c CreateOrderCommand) OrderDate() kernel.Date { return c.orderDate }

// OrderType returns the order classification.
func (c CreateOrderCommand) OrderType() order.Type { return c.orderType }

// Actor returns who is creating the order.
func (c CreateOrderCommand) Actor() Actor { return c.actor }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setExternalID(externalID string) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("externalID")
	}
	c.externalID = externalID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	c.size = size
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxOrderQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxOrderQuantity)
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setMarketplace(marketplace string) error {
	if marketplace == "" {
		return errs.NewValueIsRequiredError("marketplace")
	}
	c.marketplace = marketplace
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate kernel.Date) error {
	if err := orderDate.Validate(); err != nil {
		return err
	}
	c.orderDate = orderDate
	return nil
}

func (c *CreateOrderCommand) setType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

// maxOrderQuantity caps a single order line. The workshop batches bigger
// jobs into several orders so each department queue entry stays one rack.
const maxOrderQuantity = 1000
