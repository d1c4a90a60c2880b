package commands

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrListItemCommandIsNotConstructed = errors.New(
		"ListItemCommand must be created via NewListItemCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("carrierName is required")
	ErrDescriptionIsRequired = errors.New("description is required")
)

// ListItemCommand represents a request to put a second-hand item up for
// sale. Automatically generates a unique ID for the item. The base price
// and the resale price are inputs; the platform does not compute them.
type ListItemCommand struct { //nolint:recvcheck //using for validation
	itemID         kernel.UUID
	sellerID       kernel.UUID
	carrierName    string
	description    string
	brand          string
	basePrice      float64
	price          float64
	conditionScore float64

	guard guard.ConstructorGuard
}

// NewListItemCommand creates a command to list an item for sale.
func NewListItemCommand(
	sellerID kernel.UUID,
	carrierName string,
	description string,
	brand string,
	basePrice float64,
	price float64,
	conditionScore float64,
) (ListItemCommand, error) {
	command := ListItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(kernel.NewUUID()),
		command.setSellerID(sellerID),
		command.setCarrierName(carrierName),
		command.setDescription(description, brand),
		command.setPrices(basePrice, price),
		command.setConditionScore(conditionScore),
	); err != nil {
		return ListItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ListItemCommand) Validate() error {
	return c.guard.Validate(ErrListItemCommandIsNotConstructed)
}

// ItemID returns the generated item ID from the command.
func (c ListItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// SellerID returns the seller ID from the command.
func (c ListItemCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// CarrierName returns the shipping carrier name from the command.
func (c ListItemCommand) CarrierName() string {
	return c.carrierName
}

// Description returns the item description from the command.
func (c ListItemCommand) Description() string {
	return c.description
}

// Brand returns the item brand from the command.
func (c ListItemCommand) Brand() string {
	return c.brand
}

// BasePrice returns the original retail price from the command.
func (c ListItemCommand) BasePrice() float64 {
	return c.basePrice
}

// Price returns the resale price from the command.
func (c ListItemCommand) Price() float64 {
	return c.price
}

// ConditionScore returns the condition score from the command.
func (c ListItemCommand) ConditionScore() float64 {
	return c.conditionScore
}

func (c *ListItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *ListItemCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return fmt.Errorf("sellerID: %w", err)
	}

	c.sellerID = sellerID
	return nil
}

func (c *ListItemCommand) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return ErrCarrierNameIsRequired
	}

	c.carrierName = carrierName
	return nil
}

func (c *ListItemCommand) setDescription(description, brand string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	c.brand = brand
	return nil
}

func (c *ListItemCommand) setPrices(basePrice, price float64) error {
	if basePrice < 0 {
		return fmt.Errorf("basePrice must not be negative, got %f", basePrice)
	}
	if price < 0 {
		return fmt.Errorf("price must not be negative, got %f", price)
	}

	c.basePrice = basePrice
	c.price = price
	return nil
}

func (c *ListItemCommand) setConditionScore(conditionScore float64) error {
	if conditionScore < 0 || conditionScore > 1 {
		return fmt.Errorf("conditionScore must be in [0, 1], got %f", conditionScore)
	}

	c.conditionScore = conditionScore
	return nil
}
