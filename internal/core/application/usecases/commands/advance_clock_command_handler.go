package commands

import (
	"context"
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/core/domain/services"
)

// SettlementDelayDays is the wait after the order date before a Finished
// order settles. Measured from the order date, not from the Finished
// transition.
const SettlementDelayDays = 3

// ErrTargetPrecedesClock is returned when the requested target day lies
// before the platform's current date.
var ErrTargetPrecedesClock = errors.New("target date precedes the current date")

// AdvanceClockCommandHandler drives the simulation forward. The clock
// moves one day per transaction: each day ticks the platform date,
// finishes yesterday's pending orders, and settles finished orders whose
// delay has passed. A failure mid-advance leaves every fully processed day
// committed and the failing day rolled back.
type AdvanceClockCommandHandler struct {
	uowFactory UoWFactory
	settler    services.OrderSettler
}

// NewAdvanceClockCommandHandler creates a handler for clock advances.
func NewAdvanceClockCommandHandler(uowFactory UoWFactory) AdvanceClockCommandHandler {
	return AdvanceClockCommandHandler{
		uowFactory: uowFactory,
		settler:    services.NewOrderSettler(),
	}
}

// Handle advances the clock day by day until it reaches the target.
func (h *AdvanceClockCommandHandler) Handle(ctx context.Context, cmd AdvanceClockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	first := true
	for {
		done, err := h.advanceOneDay(ctx, cmd.Target(), first)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		first = false
	}
}

// advanceOneDay moves the clock one day forward in its own transaction.
// Reports done once the clock has reached the target.
func (h *AdvanceClockCommandHandler) advanceOneDay(
	ctx context.Context,
	target kernel.Date,
	validateTarget bool,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vintage, err := uow.PlatformRepository().Get(ctx)
	if err != nil {
		return false, err
	}

	if validateTarget && target.Before(vintage.CurrentDate()) {
		return false, fmt.Errorf("%w: %s < %s", ErrTargetPrecedesClock, target, vintage.CurrentDate())
	}
	if !vintage.CurrentDate().Before(target) {
		return true, nil
	}

	vintage.AdvanceDay()
	today := vintage.CurrentDate()

	if err = h.finishPendingOrders(ctx, uow, vintage, today); err != nil {
		return false, err
	}
	if err = h.settleFinishedOrders(ctx, uow, today); err != nil {
		return false, err
	}

	if err = uow.PlatformRepository().Update(ctx, vintage); err != nil {
		return false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return !today.Before(target), nil
}

// finishPendingOrders hands over every order placed before today.
func (h *AdvanceClockCommandHandler) finishPendingOrders(
	ctx context.Context,
	uow UoW,
	vintage *platform.Platform,
	today kernel.Date,
) error {
	pending, err := uow.OrderRepository().GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}

	for _, ord := range pending {
		if !ord.Date().Before(today) {
			continue
		}

		items, err := h.loadOrderItems(ctx, uow, ord)
		if err != nil {
			return err
		}
		if err = h.settler.Finish(ord, items, vintage, today); err != nil {
			return err
		}

		for _, held := range items {
			if err = uow.ItemRepository().Update(ctx, held); err != nil {
				return err
			}
		}
		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return err
		}
	}

	return nil
}

// settleFinishedOrders dispatches every finished order whose settlement
// delay has elapsed and persists the bills and ledgers it produced.
func (h *AdvanceClockCommandHandler) settleFinishedOrders(
	ctx context.Context,
	uow UoW,
	today kernel.Date,
) error {
	finished, err := uow.OrderRepository().GetAllInFinishedStatus(ctx)
	if err != nil {
		return err
	}

	for _, ord := range finished {
		if today.DaysSince(ord.Date()) < SettlementDelayDays {
			continue
		}

		carriers, err := h.loadOrderCarriers(ctx, uow, ord)
		if err != nil {
			return err
		}

		bills, err := h.settler.Settle(ord, carriers)
		if err != nil {
			return err
		}

		for _, shipper := range carriers {
			if err = uow.CarrierRepository().Update(ctx, shipper); err != nil {
				return err
			}
		}
		for _, emitted := range bills {
			if err = uow.BillRepository().Add(ctx, emitted); err != nil {
				return err
			}
		}
		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return err
		}
	}

	return nil
}

func (h *AdvanceClockCommandHandler) loadOrderItems(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
) (map[kernel.UUID]*item.Item, error) {
	items := make(map[kernel.UUID]*item.Item)
	for _, line := range ord.Lines() {
		ordered, err := uow.ItemRepository().Get(ctx, line.ItemID())
		if err != nil {
			return nil, err
		}
		items[ordered.ID()] = ordered
	}
	return items, nil
}

func (h *AdvanceClockCommandHandler) loadOrderCarriers(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
) (map[string]*carrier.Carrier, error) {
	carriers := make(map[string]*carrier.Carrier)
	for name := range ord.CarrierItemCount() {
		shipper, err := uow.CarrierRepository().GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		carriers[name] = shipper
	}
	return carriers, nil
}
