package commands

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrReturnOrderCommandIsNotConstructed = errors.New(
		"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
	)
)

// ReturnOrderCommand represents a request to undo a dispatched order.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return an order.
func NewReturnOrderCommand(orderID kernel.UUID) (ReturnOrderCommand, error) {
	command := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ReturnOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}

	c.orderID = orderID
	return nil
}
