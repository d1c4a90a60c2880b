package commands_test

import (
	"testing"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRelistItemCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		itemID := kernel.NewUUID()

		cmd, err := commands.NewRelistItemCommand(itemID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ItemID().IsEqual(itemID))
	})

	t.Run("should fail with invalid item ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewRelistItemCommand(invalidID)
		require.Error(t, err)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.RelistItemCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRelistItemCommandIsNotConstructed)
	})
}

func TestNewDelistItemCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		itemID := kernel.NewUUID()

		cmd, err := commands.NewDelistItemCommand(itemID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ItemID().IsEqual(itemID))
	})

	t.Run("should fail with invalid item ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewDelistItemCommand(invalidID)
		require.Error(t, err)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.DelistItemCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrDelistItemCommandIsNotConstructed)
	})
}
