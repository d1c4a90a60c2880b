package bill

import (
	"errors"

	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"
	"vintage/internal/pkg/errs"
)

// SellerPayoutRate is the fraction of the item proceeds a seller receives.
// The remaining 1.2% stays with the platform.
const SellerPayoutRate = 0.988

var (
	// ErrBillIsNotConstructed is returned when a Bill instance was not
	// created through NewBill or RestoreBill.
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill")
)

// Bill is the financial record a settled order leaves behind for one user.
// A Bought bill goes to the buyer and covers every item in the order plus
// the shipping tax. A Sold bill goes to a seller and covers only that
// seller's items; the platform keeps a cut before paying out.
//
// The shipping tax accrues on item base prices at the carrier rate for the
// order's per-carrier batch size, IVA included. When a line is removed and
// the batch drops below a tier boundary, the remaining tax is restated at
// the lower tier's rate.
type Bill struct {
	id      kernel.UUID
	kind    Kind
	ownerID kernel.UUID
	orderID kernel.UUID

	lines     map[kernel.UUID]order.ItemLine
	totalCost float64
	portsTax  float64

	isConstructed bool
}

// NewBill creates an empty bill of the given kind addressed to the owner.
// Lines are added afterwards with AddItem.
func NewBill(id kernel.UUID, kind Kind, ownerID kernel.UUID, orderID kernel.UUID) (*Bill, error) {
	bill := &Bill{
		lines:         make(map[kernel.UUID]order.ItemLine),
		isConstructed: true,
	}

	if err := errors.Join(
		bill.setID(id),
		bill.setKind(kind),
		bill.setOwnerID(ownerID),
		bill.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return bill, nil
}

// RestoreBill reconstructs a Bill from persistence. The persisted totals are
// trusted as-is; the tier history that produced portsTax is not replayable
// from the lines alone.
func RestoreBill(
	id kernel.UUID,
	kind Kind,
	ownerID kernel.UUID,
	orderID kernel.UUID,
	lines []order.ItemLine,
	totalCost float64,
	portsTax float64,
) (*Bill, error) {
	bill, err := NewBill(id, kind, ownerID, orderID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
		bill.lines[line.ItemID()] = line
	}

	bill.totalCost = totalCost
	bill.portsTax = portsTax
	return bill, nil
}

// Validate ensures the Bill instance was properly constructed.
func (b *Bill) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBillIsNotConstructed
	}
	return nil
}

// ID returns the bill's unique identifier.
func (b *Bill) ID() kernel.UUID {
	return b.id
}

// Kind returns whether this is a Bought or a Sold bill.
func (b *Bill) Kind() Kind {
	return b.kind
}

// OwnerID returns the user the bill is addressed to.
func (b *Bill) OwnerID() kernel.UUID {
	return b.ownerID
}

// OrderID returns the order the bill settles.
func (b *Bill) OrderID() kernel.UUID {
	return b.orderID
}

// Lines returns a copy of the billed item snapshots.
func (b *Bill) Lines() []order.ItemLine {
	lines := make([]order.ItemLine, 0, len(b.lines))
	for _, line := range b.lines {
		lines = append(lines, line)
	}
	return lines
}

// TotalCost returns the sum of the billed item prices.
func (b *Bill) TotalCost() float64 {
	return b.totalCost
}

// PortsTax returns the accrued shipping tax. Sellers never pay shipping, so
// Sold bills report zero regardless of what accrued.
func (b *Bill) PortsTax() float64 {
	if b.kind == Sold {
		return 0
	}
	return b.portsTax
}

// Amount returns the money the bill settles to. A Sold bill pays the seller
// their share of the proceeds; a Bought bill charges the buyer the item
// costs plus shipping.
func (b *Bill) Amount() float64 {
	if b.kind == Sold {
		return b.totalCost * SellerPayoutRate
	}
	return b.portsTax + b.totalCost
}

// AddItem bills an item snapshot. tierCount is the number of items the
// order routes through the line's carrier; the shipping tax for the line is
// the carrier rate for that batch size, IVA included, applied to the item's
// base price.
func (b *Bill) AddItem(line order.ItemLine, tierCount int, shipper *carrier.Carrier) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}
	if err := shipper.Validate(); err != nil {
		return err
	}
	if _, ok := b.lines[line.ItemID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("line",
			errors.New("item is already billed"))
	}

	rate, err := shipper.RateWithIVAFor(tierCount)
	if err != nil {
		return err
	}

	b.lines[line.ItemID()] = line
	b.portsTax += rate * line.BasePrice()
	b.recalculateTotalCost()
	return nil
}

// RemoveItem takes a billed item back out. tierCount is the batch size
// before the removal. When the removal crosses a tier boundary the
// remaining tax, accrued at the higher rate, is restated at the lower one.
func (b *Bill) RemoveItem(line order.ItemLine, tierCount int, shipper *carrier.Carrier) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}
	if err := shipper.Validate(); err != nil {
		return err
	}
	if _, ok := b.lines[line.ItemID()]; !ok {
		return errs.NewObjectNotFoundError("line", line.ItemID())
	}

	rate, err := shipper.RateWithIVAFor(tierCount)
	if err != nil {
		return err
	}

	delete(b.lines, line.ItemID())
	b.portsTax -= rate * line.BasePrice()

	switch tierCount {
	case 2:
		smallWithIVA, _ := shipper.RateWithIVAFor(1)
		mediumWithIVA, _ := shipper.RateWithIVAFor(2)
		b.portsTax = b.portsTax / mediumWithIVA * smallWithIVA
	case 6:
		mediumWithIVA, _ := shipper.RateWithIVAFor(2)
		bigWithIVA, _ := shipper.RateWithIVAFor(6)
		b.portsTax = b.portsTax / bigWithIVA * mediumWithIVA
	}

	b.recalculateTotalCost()
	return nil
}

// IsEqual compares bills by identity.
func (b *Bill) IsEqual(other *Bill) bool {
	return b.id.IsEqual(other.id)
}

func (b *Bill) recalculateTotalCost() {
	total := 0.0
	for _, line := range b.lines {
		total += line.Price()
	}
	b.totalCost = total
}

func (b *Bill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bill) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	b.kind = kind
	return nil
}

func (b *Bill) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("ownerID", err)
	}
	b.ownerID = ownerID
	return nil
}

func (b *Bill) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	b.orderID = orderID
	return nil
}
