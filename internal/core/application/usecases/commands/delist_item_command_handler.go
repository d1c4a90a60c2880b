package commands

import (
	"context"
)

// DelistItemCommandHandler handles taking a listed item off the market.
// The owner keeps the item; an item reserved by a pending order cannot be
// delisted.
type DelistItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewDelistItemCommandHandler creates a handler for item delisting.
func NewDelistItemCommandHandler(uowFactory ItemUoWFactory) DelistItemCommandHandler {
	return DelistItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delist command within a transaction.
func (h *DelistItemCommandHandler) Handle(ctx context.Context, cmd DelistItemCommand) error {
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

	itemEntity, err := uow.ItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = itemEntity.Delist(); err != nil {
		return err
	}

	if err = uow.ItemRepository().Update(ctx, itemEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
