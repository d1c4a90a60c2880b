package services

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/pkg/errs"
)

// ReturnWindowDays is how long after the order date a dispatched order
// stays returnable.
const ReturnWindowDays = 16

// ErrOrderIsNotReturnable is returned when a return is requested on an
// order that does not satisfy the return preconditions: it must be
// Dispatched, still inside the return window, and the buyer must still
// hold every item.
var ErrOrderIsNotReturnable = errors.New("order is not returnable")

// OrderReturner is the domain service that undoes a settled order.
//
// A return is the exact mirror of Finish plus Settle: every item goes back
// to its previous owner and is listed again, the platform's handover
// commissions reverse, and each carrier's earnings reverse with the same
// boundary restatement the accrual used. Bills are removed by the caller;
// the domain only reverses the ledgers.
//
// Business rules:
//   - only Dispatched orders return
//   - the return window is 16 days from the order date
//   - the buyer must still hold every item; reselling any of them makes
//     the whole order non-returnable
type OrderReturner struct{}

// NewOrderReturner creates a new OrderReturner instance.
func NewOrderReturner() OrderReturner {
	return OrderReturner{}
}

// Return reverses the order's settlement. All preconditions are checked
// before any state moves, so a failed return leaves every aggregate
// untouched.
func (r OrderReturner) Return(
	ord *order.Order,
	items map[kernel.UUID]*item.Item,
	carriers map[string]*carrier.Carrier,
	vintage *platform.Platform,
	today kernel.Date,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := vintage.Validate(); err != nil {
		return err
	}

	if ord.Status() != order.Dispatched {
		return fmt.Errorf("%w: order is %s, not dispatched", ErrOrderIsNotReturnable, ord.Status())
	}
	if today.DaysSince(ord.Date()) >= ReturnWindowDays {
		return fmt.Errorf("%w: return window of %d days expired", ErrOrderIsNotReturnable, ReturnWindowDays)
	}

	for _, line := range ord.Lines() {
		ordered, ok := items[line.ItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("item", line.ItemID())
		}
		if !ordered.OwnerID().IsEqual(ord.BuyerID()) || !ordered.IsHeld() {
			return fmt.Errorf("%w: buyer no longer holds item %s", ErrOrderIsNotReturnable, line.ItemID())
		}
	}
	for name := range ord.CarrierItemCount() {
		if _, ok := carriers[name]; !ok {
			return errs.NewObjectNotFoundError("carrier", name)
		}
	}

	for _, line := range ord.Lines() {
		if err := items[line.ItemID()].ReturnToPreviousOwner(); err != nil {
			return err
		}
		if err := vintage.ReverseHandover(line.Price(), line.ConditionScore()); err != nil {
			return err
		}
	}

	for name, count := range ord.CarrierItemCount() {
		if err := carriers[name].Reverse(count, ord.ItemPriceForCarrier(name)); err != nil {
			return err
		}
	}

	return nil
}
