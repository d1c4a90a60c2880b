package item

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrItemIsNotListed is returned when a handover is requested for an
	// item that is not currently for sale.
	ErrItemIsNotListed = errors.New("item is not listed for sale")

	// ErrItemIsNotHeld is returned when a relisting or return is requested
	// for an item that is not currently held by a buyer.
	ErrItemIsNotHeld = errors.New("item is not held by a buyer")

	// ErrItemIsNotReserved is returned when a release is requested for an
	// item that no pending order claims.
	ErrItemIsNotReserved = errors.New("item is not reserved by an order")

	// ErrNoPreviousOwner is returned when a return is requested for an item
	// whose ownership log is empty.
	ErrNoPreviousOwner = errors.New("item has no previous owner")
)

// Item represents one second-hand article on the marketplace.
//
// The marketplace core only consumes a handful of observations from an item:
// its resale price and base price (how those were derived is the listing
// flow's business), its carrier, and its condition score. What the core owns
// is the ownership side: who holds the item, whether it is for sale, and the
// append-only log of previous owners that the return path walks backwards.
//
// Item follows these invariants:
//   - basePrice and price are non-negative
//   - conditionScore lies in [0, 1]
//   - the ownership log only grows via HandOverTo and shrinks via
//     ReturnToPreviousOwner
type Item struct {
	id          kernel.UUID
	description string
	brand       string

	basePrice      float64
	price          float64
	conditionScore float64
	carrierName    string

	ownerID      kernel.UUID
	status       Status
	ownershipLog []OwnershipRecord

	isConstructed bool
}

// NewItem creates a freshly listed Item owned by its seller.
//
// Parameters:
//   - id: unique identifier
//   - ownerID: the listing seller
//   - carrierName: the carrier that ships this item
//   - description, brand: display attributes
//   - basePrice: the original (new) price, the basis for port taxes on bills
//   - price: the resale price, supplied by the listing flow
//   - conditionScore: condition in [0, 1], 1 meaning as new
func NewItem(
	id kernel.UUID,
	ownerID kernel.UUID,
	carrierName string,
	description string,
	brand string,
	basePrice float64,
	price float64,
	conditionScore float64,
) (*Item, error) {
	item := &Item{
		description:   description,
		brand:         brand,
		status:        Listed,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOwnerID(ownerID),
		item.setCarrierName(carrierName),
		item.setPrices(basePrice, price),
		item.setConditionScore(conditionScore),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its status and
// ownership log.
func RestoreItem(
	id kernel.UUID,
	ownerID kernel.UUID,
	carrierName string,
	description string,
	brand string,
	basePrice float64,
	price float64,
	conditionScore float64,
	status Status,
	ownershipLog []OwnershipRecord,
) (*Item, error) {
	item, err := NewItem(id, ownerID, carrierName, description, brand, basePrice, price, conditionScore)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, record := range ownershipLog {
		if err = record.Validate(); err != nil {
			return nil, err
		}
	}

	item.status = status
	item.ownershipLog = append([]OwnershipRecord(nil), ownershipLog...)
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Description returns the item's display description.
func (i *Item) Description() string {
	return i.description
}

// Brand returns the item's brand.
func (i *Item) Brand() string {
	return i.brand
}

// BasePrice returns the original price, the basis for bill port taxes.
func (i *Item) BasePrice() float64 {
	return i.basePrice
}

// Price returns the resale price.
func (i *Item) Price() float64 {
	return i.price
}

// ConditionScore returns the condition score in [0, 1].
func (i *Item) ConditionScore() float64 {
	return i.conditionScore
}

// CarrierName returns the name of the carrier shipping this item.
func (i *Item) CarrierName() string {
	return i.carrierName
}

// OwnerID returns the current owner.
func (i *Item) OwnerID() kernel.UUID {
	return i.ownerID
}

// Status returns the item's sale status.
func (i *Item) Status() Status {
	return i.status
}

// IsListed reports whether the item is currently for sale.
func (i *Item) IsListed() bool {
	return i.status == Listed
}

// IsHeld reports whether the item is currently held by a buyer.
func (i *Item) IsHeld() bool {
	return i.status == Held
}

// IsReserved reports whether a pending order currently claims the item.
func (i *Item) IsReserved() bool {
	return i.status == Reserved
}

// SatisfactionFee returns the per-item satisfaction surcharge: 0.5 for items
// in perfect condition, 0.25 otherwise.
func (i *Item) SatisfactionFee() float64 {
	if i.conditionScore == 1 {
		return 0.5
	}
	return 0.25
}

// OwnershipLog returns a copy of the append-only ownership log, oldest first.
func (i *Item) OwnershipLog() []OwnershipRecord {
	return append([]OwnershipRecord(nil), i.ownershipLog...)
}

// PreviousOwner returns the most recent previous owner, if any.
func (i *Item) PreviousOwner() (kernel.UUID, bool) {
	if len(i.ownershipLog) == 0 {
		return kernel.UUID{}, false
	}
	return i.ownershipLog[len(i.ownershipLog)-1].OwnerID(), true
}

// Reserve claims a listed item for a pending order, taking it off market
// until the order finishes or releases it. A reserved item cannot enter a
// second order.
//
// Returns ErrItemIsNotListed if the item is not currently for sale.
func (i *Item) Reserve() error {
	if i.status != Listed {
		return ErrItemIsNotListed
	}

	i.status = Reserved
	return nil
}

// Release undoes a reservation when the item leaves its pending order,
// putting it back on the listings.
//
// Returns ErrItemIsNotReserved if no order claims the item.
func (i *Item) Release() error {
	if i.status != Reserved {
		return ErrItemIsNotReserved
	}

	i.status = Listed
	return nil
}

// HandOverTo transfers ownership to the buyer on the given day. The current
// owner is appended to the ownership log and the item leaves the listings.
//
// Returns ErrItemIsNotListed if the item is neither listed nor reserved.
func (i *Item) HandOverTo(buyerID kernel.UUID, on kernel.Date) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	if i.status != Listed && i.status != Reserved {
		return ErrItemIsNotListed
	}

	record, err := NewOwnershipRecord(i.ownerID, on)
	if err != nil {
		return err
	}

	i.ownershipLog = append(i.ownershipLog, record)
	i.ownerID = buyerID
	i.status = Held
	return nil
}

// ReturnToPreviousOwner undoes the most recent handover: ownership moves back
// to the last entry of the ownership log, the entry is removed, and the item
// is listed for sale again.
//
// Returns ErrNoPreviousOwner when the log is empty.
func (i *Item) ReturnToPreviousOwner() error {
	if len(i.ownershipLog) == 0 {
		return ErrNoPreviousOwner
	}

	last := i.ownershipLog[len(i.ownershipLog)-1]
	i.ownershipLog = i.ownershipLog[:len(i.ownershipLog)-1]
	i.ownerID = last.OwnerID()
	i.status = Listed
	return nil
}

// Relist puts a held item back on sale by its current owner. A relisted item
// makes the order it arrived with no longer returnable.
func (i *Item) Relist() error {
	if i.status != Held {
		return ErrItemIsNotHeld
	}

	i.status = Listed
	return nil
}

// Delist takes a listed item off the market without selling it. The owner
// keeps the item; a reserved item cannot be delisted.
func (i *Item) Delist() error {
	if i.status != Listed {
		return ErrItemIsNotListed
	}

	i.status = Held
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	i.ownerID = ownerID
	return nil
}

func (i *Item) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	i.carrierName = carrierName
	return nil
}

func (i *Item) setPrices(basePrice, price float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("basePrice", fmt.Errorf("%f is negative", basePrice))
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	i.basePrice = basePrice
	i.price = price
	return nil
}

func (i *Item) setConditionScore(conditionScore float64) error {
	if conditionScore < 0 || conditionScore > 1 {
		return errs.NewValueIsOutOfRangeError("conditionScore", conditionScore, 0, 1)
	}
	i.conditionScore = conditionScore
	return nil
}
