package commands_test

import (
	"testing"
	"time"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelistItemCommandHandler_Handle(t *testing.T) {
	seedHeld := func(t *testing.T) (*fakeStore, *item.Item) {
		t.Helper()
		vintage, err := platform.NewPlatform(kernel.NewUUID(), kernel.NewDate(2024, time.June, 3))
		require.NoError(t, err)
		store := newFakeStore(vintage)

		held, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "correios", "jacket", "levis", 10, 3.5, 0.5)
		require.NoError(t, err)
		require.NoError(t, held.HandOverTo(kernel.NewUUID(), kernel.NewDate(2024, time.June, 1)))
		store.items[held.ID()] = held

		return store, held
	}

	t.Run("puts a held item back on sale", func(t *testing.T) {
		store, held := seedHeld(t)
		handler := commands.NewRelistItemCommandHandler(fakeItemUoWFactory{store: store})
		cmd, err := commands.NewRelistItemCommand(held.ID())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))

		assert.True(t, store.items[held.ID()].IsListed())
		assert.Equal(t, 1, store.commits)
	})

	t.Run("should fail for a listed item", func(t *testing.T) {
		store, held := seedHeld(t)
		require.NoError(t, held.Relist())
		handler := commands.NewRelistItemCommandHandler(fakeItemUoWFactory{store: store})
		cmd, err := commands.NewRelistItemCommand(held.ID())
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(t.Context(), cmd), item.ErrItemIsNotHeld)
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		store, _ := seedHeld(t)
		handler := commands.NewRelistItemCommandHandler(fakeItemUoWFactory{store: store})
		cmd, err := commands.NewRelistItemCommand(kernel.NewUUID())
		require.NoError(t, err)

		require.Error(t, handler.Handle(t.Context(), cmd))
	})

	t.Run("relisting breaks the returnability of the order", func(t *testing.T) {
		m := newMarketplace(t)
		advanceTo(t, m.store, kernel.NewDate(2024, time.June, 5))
		relisted := m.store.orders[m.orderID].Lines()[0].ItemID()

		handler := commands.NewRelistItemCommandHandler(fakeItemUoWFactory{store: m.store})
		cmd, err := commands.NewRelistItemCommand(relisted)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		returnHandler := commands.NewReturnOrderCommandHandler(fakeUoWFactory{store: m.store})
		returnCmd, err := commands.NewReturnOrderCommand(m.orderID)
		require.NoError(t, err)

		require.ErrorIs(t, returnHandler.Handle(t.Context(), returnCmd), services.ErrOrderIsNotReturnable)
	})
}
