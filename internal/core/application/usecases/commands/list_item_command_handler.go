package commands

import (
	"context"

	"vintage/internal/core/domain/model/item"
)

// ListItemCommandHandler handles the business logic for listing an item.
// The seller and the shipping carrier must both exist before the item goes
// on sale.
type ListItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewListItemCommandHandler creates a handler for item listing.
func NewListItemCommandHandler(uowFactory ItemUoWFactory) ListItemCommandHandler {
	return ListItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing command. Verifies the seller account and
// the referenced carrier, then creates and persists the item within a
// transaction.
func (h *ListItemCommandHandler) Handle(ctx context.Context, cmd ListItemCommand) error {
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

	if _, err := uow.UserRepository().Get(ctx, cmd.SellerID()); err != nil {
		return err
	}
	if _, err := uow.CarrierRepository().GetByName(ctx, cmd.CarrierName()); err != nil {
		return err
	}

	itemEntity, err := item.NewItem(cmd.ItemID(), cmd.SellerID(), cmd.CarrierName(),
		cmd.Description(), cmd.Brand(), cmd.BasePrice(), cmd.Price(), cmd.ConditionScore())
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, itemEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
