package commands

import (
	"context"
	"errors"

	"vintage/internal/core/domain/model/order"
)

var (
	// ErrItemIsNotForSale is returned when a requested item is not in the
	// Listed state.
	ErrItemIsNotForSale = errors.New("item is not for sale")

	// ErrBuyerOwnsItem is returned when a buyer tries to order an item
	// they already own.
	ErrBuyerOwnsItem = errors.New("buyer already owns the item")
)

// PlaceOrderCommandHandler handles the business logic for opening an
// order: each requested item is validated, snapshotted into an order
// line, and reserved so no other order can take it, and the order is
// dated by the platform clock.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command within a transaction.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	vintage, err := uow.PlatformRepository().Get(ctx)
	if err != nil {
		return err
	}

	orderEntity, err := order.NewOrder(cmd.OrderID(), cmd.BuyerID(), vintage.CurrentDate())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, itemID := range cmd.ItemIDs() {
		listed, err := itemRepo.Get(ctx, itemID)
		if err != nil {
			return err
		}

		line, err := lineFromListedItem(listed, orderEntity)
		if err != nil {
			return err
		}
		if err = orderEntity.AddItem(line); err != nil {
			return err
		}

		if err = listed.Reserve(); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, listed); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
