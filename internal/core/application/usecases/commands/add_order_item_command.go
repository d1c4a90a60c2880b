package commands

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
)

// AddOrderItemCommand represents a request to add a listed item to a
// pending order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
func NewAddOrderItemCommand(orderID kernel.UUID, itemID kernel.UUID) (AddOrderItemCommand, error) {
	command := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item ID from the command.
func (c AddOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return fmt.Errorf("itemID: %w", err)
	}

	c.itemID = itemID
	return nil
}
