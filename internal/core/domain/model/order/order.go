package order

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIsNotPending is returned when item changes are requested on an
	// order that already left the Pending state.
	ErrOrderIsNotPending = errors.New("order is not pending")
)

// TierRates resolves the commission fraction (including IVA) a carrier
// charges for a batch of the given size. *carrier.Carrier satisfies it.
type TierRates interface {
	RateWithIVAFor(tierCount int) (float64, error)
}

// Order is the aggregate root of the order lifecycle. It holds the item
// snapshots the buyer is purchasing and the running aggregates billing
// depends on: the per-carrier item counts that drive commission tiers, the
// total item price, and the satisfaction surcharge.
//
// Order follows these invariants:
//   - carrierItemCount[c] always equals the number of lines routed through
//     carrier c; a carrier with no lines has no entry
//   - aggregatePrice equals the sum of line prices
//   - satisfactionSurcharge equals the sum of per-line satisfaction fees
//   - sellers holds each distinct line seller exactly once
//   - items change only while the order is Pending
type Order struct {
	id      kernel.UUID
	buyerID kernel.UUID
	date    kernel.Date
	status  Status

	lines            []ItemLine
	carrierItemCount map[string]int
	sellers          []kernel.UUID

	aggregatePrice        float64
	satisfactionSurcharge float64
	dimension             Size

	isConstructed bool
}

// NewOrder creates an empty Pending order placed by the buyer on the given
// day. Items are added afterwards with AddItem.
func NewOrder(id kernel.UUID, buyerID kernel.UUID, date kernel.Date) (*Order, error) {
	order := &Order{
		status:           Pending,
		carrierItemCount: make(map[string]int),
		dimension:        Little,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setDate(date),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence by replaying its item
// lines and then applying the persisted status. The replay re-derives every
// running aggregate, so a stored order can never disagree with its lines.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	date kernel.Date,
	status Status,
	lines []ItemLine,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewOrder(id, buyerID, date)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = order.AddItem(line); err != nil {
			return nil, err
		}
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the ordering user.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Date returns the placement date.
func (o *Order) Date() kernel.Date {
	return o.date
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Dimension returns the display-only size classification of the order.
func (o *Order) Dimension() Size {
	return o.dimension
}

// AggregatePrice returns the sum of the prices of all items in the order.
func (o *Order) AggregatePrice() float64 {
	return o.aggregatePrice
}

// SatisfactionSurcharge returns the accumulated per-item satisfaction fees.
func (o *Order) SatisfactionSurcharge() float64 {
	return o.satisfactionSurcharge
}

// Lines returns a copy of the item snapshots, in the order they were added.
func (o *Order) Lines() []ItemLine {
	return append([]ItemLine(nil), o.lines...)
}

// ItemCount returns the number of items currently in the order.
func (o *Order) ItemCount() int {
	return len(o.lines)
}

// CarrierItemCount returns a copy of the carrier-name to item-count mapping
// that drives commission tiers.
func (o *Order) CarrierItemCount() map[string]int {
	counts := make(map[string]int, len(o.carrierItemCount))
	for name, count := range o.carrierItemCount {
		counts[name] = count
	}
	return counts
}

// TierCountFor returns the number of items routed through the carrier, the
// batch size used for tier lookups. Zero when the carrier has no items here.
func (o *Order) TierCountFor(carrierName string) int {
	return o.carrierItemCount[carrierName]
}

// Sellers returns the distinct sellers with items in the order, in the order
// they first appeared.
func (o *Order) Sellers() []kernel.UUID {
	return append([]kernel.UUID(nil), o.sellers...)
}

// LinesOfSeller returns the snapshots of the items a given seller
// contributed to the order.
func (o *Order) LinesOfSeller(sellerID kernel.UUID) []ItemLine {
	var lines []ItemLine
	for _, line := range o.lines {
		if line.SellerID().IsEqual(sellerID) {
			lines = append(lines, line)
		}
	}
	return lines
}

// ItemPriceForCarrier returns the total price of the items routed through
// the named carrier, the amount the carrier's commission applies to.
func (o *Order) ItemPriceForCarrier(carrierName string) float64 {
	var total float64
	for _, line := range o.lines {
		if line.CarrierName() == carrierName {
			total += line.Price()
		}
	}
	return total
}

// AddItem adds an item snapshot to the order and updates every running
// aggregate: the carrier batch count, the aggregate price, the satisfaction
// surcharge, the seller set, and the size classification.
//
// Returns ErrOrderIsNotPending once the order has left the Pending state,
// and a validation error for duplicate or malformed lines.
func (o *Order) AddItem(line ItemLine) error {
	if o.status != Pending {
		return ErrOrderIsNotPending
	}

	if err := line.Validate(); err != nil {
		return err
	}

	for _, existing := range o.lines {
		if existing.ItemID().IsEqual(line.ItemID()) {
			return errs.NewValueIsInvalidErrorWithCause("item",
				fmt.Errorf("item %s is already in the order", line.ItemID()))
		}
	}

	o.lines = append(o.lines, line)
	o.carrierItemCount[line.CarrierName()]++
	o.aggregatePrice += line.Price()
	o.satisfactionSurcharge += line.SatisfactionFee()

	if !o.hasSeller(line.SellerID()) {
		o.sellers = append(o.sellers, line.SellerID())
	}

	o.dimension = SizeFor(len(o.lines))
	return nil
}

// RemoveItem removes the item with the given ID from the order, rolling back
// every running aggregate. Removing the last item of a carrier drops the
// carrier's batch entry entirely; removing a seller's last item drops the
// seller.
//
// Returns the removed snapshot, ErrOrderIsNotPending outside the Pending
// state, or a not-found error when the item is not part of the order.
func (o *Order) RemoveItem(itemID kernel.UUID) (ItemLine, error) {
	if o.status != Pending {
		return ItemLine{}, ErrOrderIsNotPending
	}

	index := -1
	for i, line := range o.lines {
		if line.ItemID().IsEqual(itemID) {
			index = i
			break
		}
	}
	if index < 0 {
		return ItemLine{}, errs.NewObjectNotFoundError("item", itemID.String())
	}

	line := o.lines[index]
	o.lines = append(o.lines[:index], o.lines[index+1:]...)

	if o.carrierItemCount[line.CarrierName()] > 1 {
		o.carrierItemCount[line.CarrierName()]--
	} else {
		delete(o.carrierItemCount, line.CarrierName())
	}

	o.aggregatePrice -= line.Price()
	o.satisfactionSurcharge -= line.SatisfactionFee()

	if len(o.LinesOfSeller(line.SellerID())) == 0 {
		o.removeSeller(line.SellerID())
	}

	o.dimension = SizeFor(len(o.lines))
	return line, nil
}

// Finish moves the order from Pending to Finished. The caller is expected to
// hand the items over to the buyer as part of the same operation.
func (o *Order) Finish() error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch moves the order from Finished to Dispatched. The caller is
// expected to emit bills and accrue carrier earnings as part of the same
// operation.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CalculateFinalPrice returns what the buyer pays for the order: the
// aggregate item price, plus the satisfaction surcharge, plus per-item
// shipping commission (tier rate of the item's carrier batch plus IVA,
// applied to the item's price).
//
// The rates map must contain an entry for every carrier referenced by the
// order's lines.
func (o *Order) CalculateFinalPrice(rates map[string]TierRates) (float64, error) {
	var tax float64
	for _, line := range o.lines {
		carrierRates, ok := rates[line.CarrierName()]
		if !ok {
			return 0, errs.NewObjectNotFoundError("carrier", line.CarrierName())
		}

		rate, err := carrierRates.RateWithIVAFor(o.carrierItemCount[line.CarrierName()])
		if err != nil {
			return 0, err
		}

		tax += line.Price() * rate
	}

	return o.aggregatePrice + o.satisfactionSurcharge + tax, nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) hasSeller(sellerID kernel.UUID) bool {
	for _, seller := range o.sellers {
		if seller.IsEqual(sellerID) {
			return true
		}
	}
	return false
}

func (o *Order) removeSeller(sellerID kernel.UUID) {
	for i, seller := range o.sellers {
		if seller.IsEqual(sellerID) {
			o.sellers = append(o.sellers[:i], o.sellers[i+1:]...)
			return
		}
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	o.date = date
	return nil
}
