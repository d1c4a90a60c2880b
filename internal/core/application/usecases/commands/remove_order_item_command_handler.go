package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler handles taking an item back out of an
// order that is still composing.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order items.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within a transaction. The order must still
// be Pending and must contain the item. The dropped item goes back on the
// listings.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	if _, err = orderEntity.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}

	dropped, err := uow.ItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if err = dropped.Release(); err != nil {
		return err
	}
	if err = uow.ItemRepository().Update(ctx, dropped); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
