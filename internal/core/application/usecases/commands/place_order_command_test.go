package commands_test

import (
	"testing"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	buyer := kernel.NewUUID()

	t.Run("should create command and generate an ID", func(t *testing.T) {
		itemIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		cmd, err := commands.NewPlaceOrderCommand(buyer, itemIDs)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NoError(t, cmd.OrderID().Validate())
		assert.Len(t, cmd.ItemIDs(), 2)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(buyer, nil)

		require.ErrorIs(t, err, commands.ErrItemIDsAreRequired)
	})

	t.Run("should fail with an invalid item ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewPlaceOrderCommand(buyer, []kernel.UUID{invalidID})

		require.Error(t, err)
	})

	t.Run("should fail with an invalid buyer", func(t *testing.T) {
		var invalidBuyer kernel.UUID

		_, err := commands.NewPlaceOrderCommand(invalidBuyer, []kernel.UUID{kernel.NewUUID()})

		require.Error(t, err)
	})

	t.Run("mutating the input slice does not affect the command", func(t *testing.T) {
		itemIDs := []kernel.UUID{kernel.NewUUID()}
		cmd, err := commands.NewPlaceOrderCommand(buyer, itemIDs)
		require.NoError(t, err)

		itemIDs[0] = kernel.NewUUID()

		assert.NotEqual(t, itemIDs[0], cmd.ItemIDs()[0])
	})
}
