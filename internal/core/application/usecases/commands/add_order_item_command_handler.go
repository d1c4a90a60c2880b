package commands

import (
	"context"
	"fmt"

	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler handles adding an item to an order that is
// still composing. The snapshot rules match order placement.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within a transaction. The order must still
// be Pending and the item must be listed and not owned by the buyer. The
// added item is reserved until the order finishes or drops it.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	listed, err := uow.ItemRepository().Get(ctx, cmd.ItemID())
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
	if err = uow.ItemRepository().Update(ctx, listed); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, orderEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// lineFromListedItem freezes a listed item into an order line. The snapshot
// is what billing sees later, so price changes after placement do not move
// already-placed orders.
func lineFromListedItem(listed *item.Item, ord *order.Order) (order.ItemLine, error) {
	if !listed.IsListed() {
		return order.ItemLine{}, fmt.Errorf("%w: %s", ErrItemIsNotForSale, listed.ID())
	}
	if listed.OwnerID().IsEqual(ord.BuyerID()) {
		return order.ItemLine{}, fmt.Errorf("%w: %s", ErrBuyerOwnsItem, listed.ID())
	}

	return order.NewItemLine(listed.ID(), listed.OwnerID(), listed.CarrierName(),
		listed.BasePrice(), listed.Price(), listed.ConditionScore())
}
