package commands_test

import (
	"testing"
	"time"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelistItemCommandHandler_Handle(t *testing.T) {
	seedListed := func(t *testing.T) (*fakeStore, *item.Item) {
		t.Helper()
		vintage, err := platform.NewPlatform(kernel.NewUUID(), kernel.NewDate(2024, time.June, 3))
		require.NoError(t, err)
		store := newFakeStore(vintage)

		listed, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "correios", "jacket", "levis", 10, 3.5, 0.5)
		require.NoError(t, err)
		store.items[listed.ID()] = listed

		return store, listed
	}

	t.Run("takes a listed item off the market", func(t *testing.T) {
		store, listed := seedListed(t)
		handler := commands.NewDelistItemCommandHandler(fakeItemUoWFactory{store: store})
		cmd, err := commands.NewDelistItemCommand(listed.ID())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))

		assert.True(t, store.items[listed.ID()].IsHeld())
		assert.Equal(t, 1, store.commits)
	})

	t.Run("a delisted item cannot be ordered", func(t *testing.T) {
		store, listed := seedListed(t)
		handler := commands.NewDelistItemCommandHandler(fakeItemUoWFactory{store: store})
		cmd, err := commands.NewDelistItemCommand(listed.ID())
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		place := commands.NewPlaceOrderCommandHandler(fakeOrderUoWFactory{store: store})
		placeCmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), []kernel.UUID{listed.ID()})
		require.NoError(t, err)

		require.ErrorIs(t, place.Handle(t.Context(), placeCmd), commands.ErrItemIsNotForSale)
	})

	t.Run("should fail for an item reserved by an order", func(t *testing.T) {
		store, listed := seedListed(t)
		require.NoError(t, listed.Reserve())
		handler := commands.NewDelistItemCommandHandler(fakeItemUoWFactory{store: store})
		cmd, err := commands.NewDelistItemCommand(listed.ID())
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(t.Context(), cmd), item.ErrItemIsNotListed)
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		store, _ := seedListed(t)
		handler := commands.NewDelistItemCommandHandler(fakeItemUoWFactory{store: store})
		cmd, err := commands.NewDelistItemCommand(kernel.NewUUID())
		require.NoError(t, err)

		require.Error(t, handler.Handle(t.Context(), cmd))
	})
}
