package commands

import (
	"context"

	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/services"
)

// ReturnOrderCommandHandler handles the return flow: the domain reverses
// items, platform profit, and carrier earnings, then the handler erases
// the order's bills and the order itself. Everything happens in one
// transaction so a failed return changes nothing.
type ReturnOrderCommandHandler struct {
	uowFactory UoWFactory
	returner   services.OrderReturner
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(uowFactory UoWFactory) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		returner:   services.NewOrderReturner(),
	}
}

// Handle processes the return command.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	vintage, err := uow.PlatformRepository().Get(ctx)
	if err != nil {
		return err
	}

	items := make(map[kernel.UUID]*item.Item)
	for _, line := range ord.Lines() {
		ordered, err := uow.ItemRepository().Get(ctx, line.ItemID())
		if err != nil {
			return err
		}
		items[ordered.ID()] = ordered
	}

	carriers := make(map[string]*carrier.Carrier)
	for name := range ord.CarrierItemCount() {
		shipper, err := uow.CarrierRepository().GetByName(ctx, name)
		if err != nil {
			return err
		}
		carriers[name] = shipper
	}

	if err = h.returner.Return(ord, items, carriers, vintage, vintage.CurrentDate()); err != nil {
		return err
	}

	for _, returned := range items {
		if err = uow.ItemRepository().Update(ctx, returned); err != nil {
			return err
		}
	}
	for _, shipper := range carriers {
		if err = uow.CarrierRepository().Update(ctx, shipper); err != nil {
			return err
		}
	}
	if err = uow.PlatformRepository().Update(ctx, vintage); err != nil {
		return err
	}

	if err = uow.BillRepository().DeleteByOrder(ctx, ord.ID()); err != nil {
		return err
	}
	if err = uow.OrderRepository().Delete(ctx, ord.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
