package carrier

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"
)

// IVA is the VAT-like surcharge added on top of every carrier commission rate.
// It is a platform-wide constant shared by all carriers.
const IVA = 0.13

var (
	// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
	// created through NewCarrier or RestoreCarrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")
)

// Carrier is the earnings ledger for one shipping carrier. It carries the
// three commission rates of the tier model and the accumulated earnings.
//
// Commission tiers are fixed platform-wide: a batch of 1 item within one
// order is charged at the small rate, 2 to 5 items at the medium rate, and
// more than 5 items at the big rate.
//
// Carrier follows these invariants:
//   - The name is non-empty and unique across the platform
//   - Each tier rate lies in (0, 1)
//   - totalEarning only changes through Accrue and Reverse
type Carrier struct {
	id   kernel.UUID
	name string

	taxSmall  float64
	taxMedium float64
	taxBig    float64

	totalEarning float64

	isConstructed bool
}

// NewCarrier creates a Carrier with zero accumulated earnings.
//
// Parameters:
//   - id: unique identifier
//   - name: unique carrier name, the key used to route order items
//   - taxSmall, taxMedium, taxBig: commission fractions per tier, each in (0, 1)
//
// Returns a validation error if any parameter is invalid.
func NewCarrier(id kernel.UUID, name string, taxSmall, taxMedium, taxBig float64) (*Carrier, error) {
	carrier := &Carrier{
		isConstructed: true,
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setName(name),
		carrier.setRates(taxSmall, taxMedium, taxBig),
	); err != nil {
		return nil, err
	}

	return carrier, nil
}

// RestoreCarrier reconstructs a Carrier from persistence, including its
// accumulated earnings. It applies the same validation as NewCarrier.
func RestoreCarrier(id kernel.UUID, name string, taxSmall, taxMedium, taxBig, totalEarning float64) (*Carrier, error) {
	carrier, err := NewCarrier(id, name, taxSmall, taxMedium, taxBig)
	if err != nil {
		return nil, err
	}

	carrier.totalEarning = totalEarning
	return carrier, nil
}

// Validate ensures the Carrier instance was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's unique name.
func (c *Carrier) Name() string {
	return c.name
}

// TaxSmall returns the commission rate for single-item batches.
func (c *Carrier) TaxSmall() float64 {
	return c.taxSmall
}

// TaxMedium returns the commission rate for batches of 2 to 5 items.
func (c *Carrier) TaxMedium() float64 {
	return c.taxMedium
}

// TaxBig returns the commission rate for batches of more than 5 items.
func (c *Carrier) TaxBig() float64 {
	return c.taxBig
}

// TotalEarning returns the accumulated earnings of the carrier.
func (c *Carrier) TotalEarning() float64 {
	return c.totalEarning
}

// RateFor returns the commission rate for a batch of tierCount items.
//
// The tier model is piecewise constant:
//   - tierCount == 1: taxSmall
//   - 2 <= tierCount <= 5: taxMedium
//   - tierCount > 5: taxBig
//
// A tierCount below 1 is invalid.
func (c *Carrier) RateFor(tierCount int) (float64, error) {
	switch {
	case tierCount == 1:
		return c.taxSmall, nil
	case tierCount >= 2 && tierCount <= 5:
		return c.taxMedium, nil
	case tierCount > 5:
		return c.taxBig, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("tierCount",
			fmt.Errorf("%d is not a valid batch size", tierCount))
	}
}

// RateWithIVAFor returns the tier rate plus the IVA surcharge, the fraction
// bills apply to an item's base price.
func (c *Carrier) RateWithIVAFor(tierCount int) (float64, error) {
	rate, err := c.RateFor(tierCount)
	if err != nil {
		return 0, err
	}
	return rate + IVA, nil
}

// Accrue adds amount x rate(tierCount) to the carrier's earnings. It is
// invoked once per carrier when an order settles, with tierCount the number
// of order items routed through this carrier and amount their total price.
func (c *Carrier) Accrue(tierCount int, amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}

	rate, err := c.RateFor(tierCount)
	if err != nil {
		return err
	}

	c.totalEarning += amount * rate
	return nil
}

// Reverse subtracts amount x rate(tierCount) from the carrier's earnings,
// undoing a prior Accrue with the same arguments.
//
// When the reversal shrinks a batch below a tier boundary (tierCount of
// exactly 2 or 6), the remaining balance is additionally restated at the
// next lower rate: the other items of the same batch were accrued at the
// higher tier and no longer qualify for it. The restatement rescales the
// whole balance rather than tracking per-item history, so repeated partial
// reversals across the same boundary drift; the behavior is kept as is.
func (c *Carrier) Reverse(tierCount int, amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}

	rate, err := c.RateFor(tierCount)
	if err != nil {
		return err
	}

	c.totalEarning -= amount * rate

	switch tierCount {
	case 2:
		c.totalEarning = c.totalEarning / c.taxMedium * c.taxSmall
	case 6:
		c.totalEarning = c.totalEarning / c.taxBig * c.taxMedium
	}

	return nil
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Carrier) setRates(taxSmall, taxMedium, taxBig float64) error {
	for param, rate := range map[string]float64{
		"taxSmall":  taxSmall,
		"taxMedium": taxMedium,
		"taxBig":    taxBig,
	} {
		if rate <= 0 || rate >= 1 {
			return errs.NewValueIsOutOfRangeError(param, rate, 0, 1)
		}
	}

	c.taxSmall = taxSmall
	c.taxMedium = taxMedium
	c.taxBig = taxBig
	return nil
}
