package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents marking an order as returned by the buyer.
// The return date is mandatory and is validated before anything else.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	returnDate kernel.Date
	actor      Actor

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to mark an order as returned.
func NewReturnOrderCommand(orderID kernel.UUID, returnDate kernel.Date, actor Actor) (ReturnOrderCommand, error) {
	cmd := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReturnDate(returnDate),
		cmd.setActor(actor),
	); err != nil {
		return ReturnOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the order being returned.
func (c ReturnOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ReturnDate returns the date the parcel came back.
func (c ReturnOrderCommand) ReturnDate() kernel.Date { return c.returnDate }

// Actor returns who is recording the return.
func (c ReturnOrderCommand) Actor() Actor { return c.actor }

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReturnOrderCommand) setReturnDate(returnDate kernel.Date) error {
	if err := returnDate.Validate(); err != nil {
		return err
	}
	c.returnDate = returnDate
	return nil
}

func (c *ReturnOrderCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
