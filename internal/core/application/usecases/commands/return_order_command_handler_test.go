package commands_test

import (
	"testing"
	"time"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatchedMarketplace advances the seeded marketplace past settlement so
// its order is returnable.
func dispatchedMarketplace(t *testing.T) marketplace {
	t.Helper()

	m := newMarketplace(t)
	advanceTo(t, m.store, kernel.NewDate(2024, time.June, 5))
	require.NotEmpty(t, m.store.bills)
	return m
}

func returnOrder(t *testing.T, m marketplace) error {
	t.Helper()

	handler := commands.NewReturnOrderCommandHandler(fakeUoWFactory{store: m.store})
	cmd, err := commands.NewReturnOrderCommand(m.orderID)
	require.NoError(t, err)
	return handler.Handle(t.Context(), cmd)
}

func TestReturnOrderCommandHandler_Handle(t *testing.T) {
	t.Run("return inside the window undoes the whole settlement", func(t *testing.T) {
		m := dispatchedMarketplace(t)
		advanceTo(t, m.store, kernel.NewDate(2024, time.June, 11))

		require.NoError(t, returnOrder(t, m))

		assert.NotContains(t, m.store.orders, m.orderID, "order is erased")
		assert.Empty(t, m.store.bills, "bills are erased")
		assert.InDelta(t, 0.0, m.store.carriers["correios"].TotalEarning(), tolerance)
		assert.InDelta(t, 0.0, m.store.platform.VintageProfit(), tolerance)
		for _, returned := range m.store.items {
			assert.True(t, returned.IsListed())
			assert.True(t, returned.OwnerID().IsEqual(m.seller))
		}
	})

	t.Run("should fail past the return window", func(t *testing.T) {
		m := dispatchedMarketplace(t)
		advanceTo(t, m.store, kernel.NewDate(2024, time.June, 18))

		err := returnOrder(t, m)

		require.ErrorIs(t, err, services.ErrOrderIsNotReturnable)
		assert.Contains(t, m.store.orders, m.orderID)
		assert.NotEmpty(t, m.store.bills)
	})

	t.Run("should fail before the order is dispatched", func(t *testing.T) {
		m := newMarketplace(t)
		advanceTo(t, m.store, kernel.NewDate(2024, time.June, 2))

		err := returnOrder(t, m)

		require.ErrorIs(t, err, services.ErrOrderIsNotReturnable)
	})

	t.Run("should fail when the buyer resold an item", func(t *testing.T) {
		m := dispatchedMarketplace(t)
		for _, held := range m.store.items {
			require.NoError(t, held.Relist())
			break
		}

		err := returnOrder(t, m)

		require.ErrorIs(t, err, services.ErrOrderIsNotReturnable)
	})

	t.Run("should fail for an unknown order", func(t *testing.T) {
		m := dispatchedMarketplace(t)
		handler := commands.NewReturnOrderCommandHandler(fakeUoWFactory{store: m.store})
		cmd, err := commands.NewReturnOrderCommand(kernel.NewUUID())
		require.NoError(t, err)

		err = handler.Handle(t.Context(), cmd)

		require.Error(t, err)
	})
}
