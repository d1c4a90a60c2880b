package commands

import (
	"errors"
	"strings"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsInvalid  = errors.New("email must contain @")
	ErrEmailIsRequired = errors.New("email is required")
	ErrNameIsRequired  = errors.New("name is required")
)

// RegisterUserCommand represents a request to create a marketplace account.
// Automatically generates a unique ID for the user.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  string
	name   string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates that the email looks like an address and the name is not empty.
func NewRegisterUserCommand(email string, name string) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(kernel.NewUUID()),
		command.setEmail(email),
		command.setName(name),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the generated user ID from the command.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the email from the command.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the display name from the command.
func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
