package commands

import (
	"errors"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrAdvanceClockCommandIsNotConstructed = errors.New(
		"AdvanceClockCommand must be created via NewAdvanceClockCommand constructor",
	)
)

// AdvanceClockCommand represents a request to move the simulation clock
// forward to a target day, settling orders along the way.
type AdvanceClockCommand struct { //nolint:recvcheck //using for validation
	target kernel.Date

	guard guard.ConstructorGuard
}

// NewAdvanceClockCommand creates a command to advance the clock.
func NewAdvanceClockCommand(target kernel.Date) (AdvanceClockCommand, error) {
	command := AdvanceClockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTarget(target); err != nil {
		return AdvanceClockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceClockCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceClockCommandIsNotConstructed)
}

// Target returns the day the clock should land on.
func (c AdvanceClockCommand) Target() kernel.Date {
	return c.target
}

func (c *AdvanceClockCommand) setTarget(target kernel.Date) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
