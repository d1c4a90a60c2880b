package commands_test

import (
	"errors"
	"testing"

	"vintage/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	t.Run("should persist the user and commit", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRegisterUserCommand("alice@example.com", "Alice")
		require.NoError(t, err)

		mockRepo := new(MockUserRepository)
		mockUoW := new(MockUoW)
		mockFactory := new(MockUserUoWFactory)

		mock.InOrder(
			mockUoW.On("Begin", ctx).Return(nil).Once(),
			mockUoW.On("UserRepository").Return(mockRepo).Once(),
			mockRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
			mockUoW.On("Commit", ctx).Return(nil).Once(),
			mockUoW.On("Rollback", ctx).Return(nil).Once(),
		)
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := commands.NewRegisterUserCommandHandler(mockFactory)

		require.NoError(t, handler.Handle(ctx, cmd))
		mockFactory.AssertExpectations(t)
		mockUoW.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should roll back when the repository fails", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRegisterUserCommand("alice@example.com", "Alice")
		require.NoError(t, err)

		repoErr := errors.New("insert failed")
		mockRepo := new(MockUserRepository)
		mockUoW := new(MockUoW)
		mockFactory := new(MockUserUoWFactory)

		mockUoW.On("Begin", ctx).Return(nil).Once()
		mockUoW.On("UserRepository").Return(mockRepo).Once()
		mockRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(repoErr).Once()
		mockUoW.On("Rollback", ctx).Return(nil).Once()
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := commands.NewRegisterUserCommandHandler(mockFactory)

		require.ErrorIs(t, handler.Handle(ctx, cmd), repoErr)
		mockUoW.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		handler := commands.NewRegisterUserCommandHandler(new(MockUserUoWFactory))

		err := handler.Handle(t.Context(), commands.RegisterUserCommand{})

		require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	})
}
