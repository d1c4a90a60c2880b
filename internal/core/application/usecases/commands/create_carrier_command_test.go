package commands_test

import (
	"testing"

	"vintage/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCarrierCommand(t *testing.T) {
	t.Run("should create command and generate an ID", func(t *testing.T) {
		cmd, err := commands.NewCreateCarrierCommand("correios", 0.25, 0.5, 0.75)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NoError(t, cmd.CarrierID().Validate())
		assert.Equal(t, "correios", cmd.Name())
		assert.InDelta(t, 0.25, cmd.TaxSmall(), tolerance)
		assert.InDelta(t, 0.5, cmd.TaxMedium(), tolerance)
		assert.InDelta(t, 0.75, cmd.TaxBig(), tolerance)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewCreateCarrierCommand("", 0.25, 0.5, 0.75)

		require.ErrorIs(t, err, commands.ErrNameIsRequired)
	})

	t.Run("should fail with a rate at or above one", func(t *testing.T) {
		_, err := commands.NewCreateCarrierCommand("correios", 0.25, 1.0, 0.75)

		require.Error(t, err)
	})

	t.Run("should fail with a rate at or below zero", func(t *testing.T) {
		_, err := commands.NewCreateCarrierCommand("correios", 0, 0.5, 0.75)

		require.Error(t, err)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.CreateCarrierCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCarrierCommandIsNotConstructed)
	})
}
