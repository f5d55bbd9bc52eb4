package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrCompleteStageCommandIsNotConstructed = errors.New(
	"CompleteStageCommand must be created via NewCompleteStageCommand constructor",
)

// CompleteStageCommand represents a worker finishing their department's
// work on an order, handing it to the next department's pending queue.
type CompleteStageCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	department order.Department
	actor      Actor

	guard guard.ConstructorGuard
}

// NewCompleteStageCommand creates a command to complete a production stage.
func NewCompleteStageCommand(orderID kernel.UUID, department order.Department, actor Actor) (CompleteStageCommand, error) {
	cmd := CompleteStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDepartment(department),
		cmd.setActor(actor),
	); err != nil {
		return CompleteStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStageCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStageCommandIsNotConstructed)
}

// OrderID returns the order being handed off.
func (c CompleteStageCommand) OrderID() kernel.UUID { return c.orderID }

// Department returns the department finishing its work.
func (c CompleteStageCommand) Department() order.Department { return c.department }

// Actor returns who is completing the stage.
func (c CompleteStageCommand) Actor() Actor { return c.actor }

func (c *CompleteStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteStageCommand) setDepartment(department order.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	c.department = department
	return nil
}

func (c *CompleteStageCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
