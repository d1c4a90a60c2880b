package services

import (
	"vintage/internal/core/domain/model/bill"
	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/pkg/errs"
)

// OrderSettler is the domain service that walks an order through the two
// settlement steps of its lifecycle.
//
// Finish hands every ordered item over to the buyer and accrues the
// platform's commission per handover. Settle runs after the settlement
// delay: it dispatches the order, accrues carrier earnings per tier, and
// emits the bills.
//
// Business rules:
//   - finishing moves item ownership; the order becomes returnable
//   - settling emits one Bought bill for the buyer and one Sold bill per
//     distinct seller
//   - carrier earnings and bill shipping tax both use the order's
//     per-carrier batch size to pick the tier rate
type OrderSettler struct{}

// NewOrderSettler creates a new OrderSettler instance.
func NewOrderSettler() OrderSettler {
	return OrderSettler{}
}

// Finish transitions the order to Finished and hands each item over to the
// buyer, accruing the platform's handover commission as it goes. The items
// must contain every item the order references.
func (s OrderSettler) Finish(
	ord *order.Order,
	items map[kernel.UUID]*item.Item,
	vintage *platform.Platform,
	today kernel.Date,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := vintage.Validate(); err != nil {
		return err
	}

	if err := ord.Finish(); err != nil {
		return err
	}

	for _, line := range ord.Lines() {
		ordered, ok := items[line.ItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("item", line.ItemID())
		}

		if err := ordered.HandOverTo(ord.BuyerID(), today); err != nil {
			return err
		}
		if err := vintage.AccrueHandover(line.Price(), line.ConditionScore()); err != nil {
			return err
		}
	}

	return nil
}

// Settle transitions the order to Dispatched, accrues each carrier's
// earnings for the prices it shipped, and emits the bills: one Bought bill
// addressed to the buyer covering the whole order, and one Sold bill per
// distinct seller covering that seller's lines.
func (s OrderSettler) Settle(
	ord *order.Order,
	carriers map[string]*carrier.Carrier,
) ([]*bill.Bill, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	if err := ord.Dispatch(); err != nil {
		return nil, err
	}

	for name, count := range ord.CarrierItemCount() {
		shipper, ok := carriers[name]
		if !ok {
			return nil, errs.NewObjectNotFoundError("carrier", name)
		}
		if err := shipper.Accrue(count, ord.ItemPriceForCarrier(name)); err != nil {
			return nil, err
		}
	}

	bought, err := s.emitBill(ord, bill.Bought, ord.BuyerID(), ord.Lines(), carriers)
	if err != nil {
		return nil, err
	}

	bills := []*bill.Bill{bought}
	for _, seller := range ord.Sellers() {
		sold, err := s.emitBill(ord, bill.Sold, seller, ord.LinesOfSeller(seller), carriers)
		if err != nil {
			return nil, err
		}
		bills = append(bills, sold)
	}

	return bills, nil
}

func (s OrderSettler) emitBill(
	ord *order.Order,
	kind bill.Kind,
	ownerID kernel.UUID,
	lines []order.ItemLine,
	carriers map[string]*carrier.Carrier,
) (*bill.Bill, error) {
	emitted, err := bill.NewBill(kernel.NewUUID(), kind, ownerID, ord.ID())
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		shipper, ok := carriers[line.CarrierName()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("carrier", line.CarrierName())
		}
		if err = emitted.AddItem(line, ord.TierCountFor(line.CarrierName()), shipper); err != nil {
			return nil, err
		}
	}

	return emitted, nil
}
