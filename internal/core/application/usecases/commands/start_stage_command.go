package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrStartStageCommandIsNotConstructed = errors.New(
	"StartStageCommand must be created via NewStartStageCommand constructor",
)

// StartStageCommand represents a worker taking an order from their
// department's pending queue into work.
type StartStageCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	department order.Department
	actor      Actor

	guard guard.ConstructorGuard
}

// NewStartStageCommand creates a command to start a production stage.
func NewStartStageCommand(orderID kernel.UUID, department order.Department, actor Actor) (StartStageCommand, error) {
	cmd := StartStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDepartment(department),
		cmd.setActor(actor),
	); err != nil {
		return StartStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartStageCommand) Validate() error {
	return c.guard.Validate(ErrStartStageCommandIsNotConstructed)
}

// OrderID returns the order to move into work.
func (c StartStageCommand) OrderID() kernel.UUID { return c.orderID }

// Department returns the department taking the order.
func (c StartStageCommand) Department() order.Department { return c.department }

// Actor returns who is starting the stage.
func (c StartStageCommand) Actor() Actor { return c.actor }

func (c *StartStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartStageCommand) setDepartment(department order.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	c.department = department
	return nil
}

func (c *StartStageCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
