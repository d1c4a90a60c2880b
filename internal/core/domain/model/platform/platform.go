package platform

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"
)

// HandoverCommission is the fraction of an item's resale price the platform
// keeps on every handover.
const HandoverCommission = 0.112

var (
	// ErrPlatformIsNotConstructed is returned when a Platform instance was
	// not created through NewPlatform or RestorePlatform.
	ErrPlatformIsNotConstructed = errors.New("Platform must be created via NewPlatform or RestorePlatform")
)

// Platform is the marketplace-wide aggregate. It owns the simulation clock
// and the vintage profit ledger fed by handover commissions and
// satisfaction fees.
//
// The profit ledger only moves through AccrueHandover and ReverseHandover,
// and the two are exact mirrors: settling an order and then returning it
// leaves the ledger where it started. The clock only moves forward.
type Platform struct {
	id            kernel.UUID
	currentDate   kernel.Date
	vintageProfit float64

	isConstructed bool
}

// NewPlatform creates the platform aggregate with its clock set to the
// given day and an empty profit ledger.
func NewPlatform(id kernel.UUID, currentDate kernel.Date) (*Platform, error) {
	platform := &Platform{
		isConstructed: true,
	}

	if err := errors.Join(
		platform.setID(id),
		platform.setCurrentDate(currentDate),
	); err != nil {
		return nil, err
	}

	return platform, nil
}

// RestorePlatform reconstructs the Platform aggregate from persistence.
func RestorePlatform(id kernel.UUID, currentDate kernel.Date, vintageProfit float64) (*Platform, error) {
	platform, err := NewPlatform(id, currentDate)
	if err != nil {
		return nil, err
	}

	platform.vintageProfit = vintageProfit
	return platform, nil
}

// Validate ensures the Platform instance was properly constructed.
func (p *Platform) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlatformIsNotConstructed
	}
	return nil
}

// ID returns the aggregate's unique identifier.
func (p *Platform) ID() kernel.UUID {
	return p.id
}

// CurrentDate returns the simulation clock's current day.
func (p *Platform) CurrentDate() kernel.Date {
	return p.currentDate
}

// VintageProfit returns the accumulated platform profit.
func (p *Platform) VintageProfit() float64 {
	return p.vintageProfit
}

// AccrueHandover records the platform's take on one item changing hands:
// the commission on the resale price plus the satisfaction fee for the
// item's condition.
func (p *Platform) AccrueHandover(price float64, conditionScore float64) error {
	fee, err := satisfactionFee(price, conditionScore)
	if err != nil {
		return err
	}

	p.vintageProfit += price*HandoverCommission + fee
	return nil
}

// ReverseHandover undoes a previous AccrueHandover with the same arguments.
func (p *Platform) ReverseHandover(price float64, conditionScore float64) error {
	fee, err := satisfactionFee(price, conditionScore)
	if err != nil {
		return err
	}

	p.vintageProfit -= price*HandoverCommission + fee
	return nil
}

// AdvanceDay moves the clock forward by one day.
func (p *Platform) AdvanceDay() {
	p.currentDate = p.currentDate.Next()
}

// SetDate moves the clock to the target day. The clock never moves
// backward.
func (p *Platform) SetDate(target kernel.Date) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target.Before(p.currentDate) {
		return errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("%s precedes the current date %s", target, p.currentDate))
	}

	p.currentDate = target
	return nil
}

func satisfactionFee(price float64, conditionScore float64) (float64, error) {
	if price < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	if conditionScore < 0 || conditionScore > 1 {
		return 0, errs.NewValueIsOutOfRangeError("conditionScore", conditionScore, 0, 1)
	}

	if conditionScore == 1 {
		return 0.5, nil
	}
	return 0.25, nil
}

func (p *Platform) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Platform) setCurrentDate(currentDate kernel.Date) error {
	if err := currentDate.Validate(); err != nil {
		return err
	}
	p.currentDate = currentDate
	return nil
}
