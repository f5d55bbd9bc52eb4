package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrSetStatusCommandIsNotConstructed = errors.New(
	"SetStatusCommand must be created via NewSetStatusCommand constructor",
)

// SetStatusCommand represents a manager's status override from the
// order list: moving an order directly to an arbitrary status to correct a
// mistake, with the jump still recorded in history.
type SetStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	actor   Actor

	guard guard.ConstructorGuard
}

// NewSetStatusCommand creates a command to override an order's status.
func NewSetStatusCommand(orderID kernel.UUID, status order.Status, actor Actor) (SetStatusCommand, error) {
	cmd := SetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setActor(actor),
	); err != nil {
		return SetStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

// OrderID returns the order being corrected.
func (c SetStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the target status.
func (c SetStatusCommand) Status() order.Status { return c.status }

// Actor returns who is overriding the status.
func (c SetStatusCommand) Actor() Actor { return c.actor }

func (c *SetStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *SetStatusCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
