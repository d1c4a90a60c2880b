package commands

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrDelistItemCommandIsNotConstructed = errors.New(
		"DelistItemCommand must be created via NewDelistItemCommand constructor",
	)
)

// DelistItemCommand represents a request to take a listed item off the
// market without selling it.
type DelistItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDelistItemCommand creates a command to delist an item.
func NewDelistItemCommand(itemID kernel.UUID) (DelistItemCommand, error) {
	command := DelistItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setItemID(itemID); err != nil {
		return DelistItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DelistItemCommand) Validate() error {
	return c.guard.Validate(ErrDelistItemCommandIsNotConstructed)
}

// ItemID returns the item ID from the command.
func (c DelistItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DelistItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return fmt.Errorf("itemID: %w", err)
	}

	c.itemID = itemID
	return nil
}
