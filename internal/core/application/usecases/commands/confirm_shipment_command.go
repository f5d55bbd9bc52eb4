package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrConfirmShipmentCommandIsNotConstructed = errors.New(
	"ConfirmShipmentCommand must be created via NewConfirmShipmentCommand constructor",
)

// ConfirmShipmentCommand represents handing a READY_TO_SHIP order to the
// courier, closing it as COMPLETED.
type ConfirmShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewConfirmShipmentCommand creates a command to confirm a shipment.
func NewConfirmShipmentCommand(orderID kernel.UUID, actor Actor) (ConfirmShipmentCommand, error) {
	cmd := ConfirmShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmShipmentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmShipmentCommandIsNotConstructed)
}

// OrderID returns the order being shipped.
func (c ConfirmShipmentCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns who is confirming the shipment.
func (c ConfirmShipmentCommand) Actor() Actor { return c.actor }

func (c *ConfirmShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmShipmentCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
