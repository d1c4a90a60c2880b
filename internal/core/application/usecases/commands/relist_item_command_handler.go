package commands

import (
	"context"
)

// RelistItemCommandHandler handles putting a held item back on sale.
// Relisting breaks the returnability of the order the item arrived with.
type RelistItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewRelistItemCommandHandler creates a handler for item relisting.
func NewRelistItemCommandHandler(uowFactory ItemUoWFactory) RelistItemCommandHandler {
	return RelistItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the relist command within a transaction. The item must
// currently be held by its owner.
func (h *RelistItemCommandHandler) Handle(ctx context.Context, cmd RelistItemCommand) error {
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

	if err = itemEntity.Relist(); err != nil {
		return err
	}

	if err = uow.ItemRepository().Update(ctx, itemEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
