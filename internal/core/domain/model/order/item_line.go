package order

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"
	"vintage/internal/pkg/guard"
)

// ErrItemLineIsNotConstructed is returned when an ItemLine was not created
// through NewItemLine.
var ErrItemLineIsNotConstructed = errors.New("ItemLine must be created via NewItemLine")

// ItemLine is the snapshot of one item taken when it is added to an order.
// Orders and bills work exclusively on these snapshots: the seller, carrier
// routing, and prices an order was composed with stay fixed even while the
// underlying item aggregate changes hands.
type ItemLine struct { //nolint:recvcheck //using for validation
	itemID         kernel.UUID
	sellerID       kernel.UUID
	carrierName    string
	basePrice      float64
	price          float64
	conditionScore float64

	guard guard.ConstructorGuard
}

// NewItemLine creates a snapshot of an item for inclusion in an order.
//
// Parameters:
//   - itemID: the item being sold
//   - sellerID: the owner of the item at order-composition time
//   - carrierName: the carrier routing the item
//   - basePrice: the item's original price (port-tax basis)
//   - price: the item's resale price
//   - conditionScore: condition in [0, 1]
func NewItemLine(
	itemID kernel.UUID,
	sellerID kernel.UUID,
	carrierName string,
	basePrice float64,
	price float64,
	conditionScore float64,
) (ItemLine, error) {
	line := ItemLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setSellerID(sellerID),
		line.setCarrierName(carrierName),
		line.setPrices(basePrice, price),
		line.setConditionScore(conditionScore),
	); err != nil {
		return ItemLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l ItemLine) Validate() error {
	return l.guard.Validate(ErrItemLineIsNotConstructed)
}

// ItemID returns the identifier of the snapshotted item.
func (l ItemLine) ItemID() kernel.UUID {
	return l.itemID
}

// SellerID returns the owner of the item at order-composition time.
func (l ItemLine) SellerID() kernel.UUID {
	return l.sellerID
}

// CarrierName returns the carrier routing the item.
func (l ItemLine) CarrierName() string {
	return l.carrierName
}

// BasePrice returns the item's original price.
func (l ItemLine) BasePrice() float64 {
	return l.basePrice
}

// Price returns the item's resale price.
func (l ItemLine) Price() float64 {
	return l.price
}

// ConditionScore returns the snapshotted condition score.
func (l ItemLine) ConditionScore() float64 {
	return l.conditionScore
}

// SatisfactionFee returns the per-item surcharge: 0.5 for perfect condition,
// 0.25 otherwise.
func (l ItemLine) SatisfactionFee() float64 {
	if l.conditionScore == 1 {
		return 0.5
	}
	return 0.25
}

func (l *ItemLine) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *ItemLine) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	l.sellerID = sellerID
	return nil
}

func (l *ItemLine) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	l.carrierName = carrierName
	return nil
}

func (l *ItemLine) setPrices(basePrice, price float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("basePrice", fmt.Errorf("%f is negative", basePrice))
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	l.basePrice = basePrice
	l.price = price
	return nil
}

func (l *ItemLine) setConditionScore(conditionScore float64) error {
	if conditionScore < 0 || conditionScore > 1 {
		return errs.NewValueIsOutOfRangeError("conditionScore", conditionScore, 0, 1)
	}
	l.conditionScore = conditionScore
	return nil
}
