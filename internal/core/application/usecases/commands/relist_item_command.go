package commands

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrRelistItemCommandIsNotConstructed = errors.New(
		"RelistItemCommand must be created via NewRelistItemCommand constructor",
	)
)

// RelistItemCommand represents a request to put a held item back on sale.
type RelistItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRelistItemCommand creates a command to relist an item.
func NewRelistItemCommand(itemID kernel.UUID) (RelistItemCommand, error) {
	command := RelistItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setItemID(itemID); err != nil {
		return RelistItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RelistItemCommand) Validate() error {
	return c.guard.Validate(ErrRelistItemCommandIsNotConstructed)
}

// ItemID returns the item ID from the command.
func (c RelistItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RelistItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return fmt.Errorf("itemID: %w", err)
	}

	c.itemID = itemID
	return nil
}
