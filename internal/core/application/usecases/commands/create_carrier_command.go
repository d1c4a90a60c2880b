package commands

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
)

// CreateCarrierCommand represents a request to register a shipping carrier
// with its three tier commission rates. Automatically generates a unique ID
// for the carrier.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string
	taxSmall  float64
	taxMedium float64
	taxBig    float64

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a new carrier.
// Validates that the name is not empty and every rate is a fraction in (0, 1).
func NewCreateCarrierCommand(name string, taxSmall, taxMedium, taxBig float64) (CreateCarrierCommand, error) {
	command := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(kernel.NewUUID()),
		command.setName(name),
		command.setRates(taxSmall, taxMedium, taxBig),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the generated carrier ID from the command.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the carrier name from the command.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// TaxSmall returns the single-item tier rate from the command.
func (c CreateCarrierCommand) TaxSmall() float64 {
	return c.taxSmall
}

// TaxMedium returns the 2-5 item tier rate from the command.
func (c CreateCarrierCommand) TaxMedium() float64 {
	return c.taxMedium
}

// TaxBig returns the over-5 item tier rate from the command.
func (c CreateCarrierCommand) TaxBig() float64 {
	return c.taxBig
}

func (c *CreateCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierID = id
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCarrierCommand) setRates(taxSmall, taxMedium, taxBig float64) error {
	for param, rate := range map[string]float64{
		"taxSmall":  taxSmall,
		"taxMedium": taxMedium,
		"taxBig":    taxBig,
	} {
		if rate <= 0 || rate >= 1 {
			return fmt.Errorf("%s must be a fraction in (0, 1), got %f", param, rate)
		}
	}

	c.taxSmall = taxSmall
	c.taxMedium = taxMedium
	c.taxBig = taxBig
	return nil
}
