package commands

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemIDsAreRequired = errors.New("at least one item is required")
)

// PlaceOrderCommand represents a request to open an order for a set of
// listed items. Automatically generates a unique ID for the order; the
// order is dated by the platform clock when handled.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID kernel.UUID
	itemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates the buyer and requires at least one item.
func NewPlaceOrderCommand(buyerID kernel.UUID, itemIDs []kernel.UUID) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setBuyerID(buyerID),
		command.setItemIDs(itemIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID from the command.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the buyer ID from the command.
func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ItemIDs returns a copy of the requested item IDs.
func (c PlaceOrderCommand) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.itemIDs))
	copy(ids, c.itemIDs)
	return ids
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return fmt.Errorf("buyerID: %w", err)
	}

	c.buyerID = buyerID
	return nil
}

func (c *PlaceOrderCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemIDsAreRequired
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("itemIDs: %w", err)
		}
	}

	c.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}
