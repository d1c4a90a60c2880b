package commands

import (
	"context"

	"vintage/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles the business logic for account
// registration. Creates and persists new user aggregates.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Creates a new user aggregate
// and persists it within a transaction.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userEntity, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, userEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
