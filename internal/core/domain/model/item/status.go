package item

import (
	"fmt"

	"vintage/internal/pkg/errs"
)

// Status represents the sale state of an item.
//
// State transitions:
//
//	Listed ──Reserve──> Reserved ──HandOverTo──> Held
//	   ^                    │                      │
//	   ├──────Release───────┘                      │
//	   ├──Relist / ReturnToPreviousOwner───────────┘
//	   └──Delist──> Held
//
// An item is Listed while it is for sale on the platform, Reserved while a
// pending order claims it, and Held while its owner keeps it off the market.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Listed means the item is for sale and may be added to pending orders.
	Listed

	// Held means the item is kept by its owner and is not for sale. A held
	// item is what keeps the order it arrived with returnable.
	Held

	// Reserved means a pending order claims the item. A reserved item is
	// off the listings until its order finishes or releases it.
	Reserved
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Listed:   "Listed",
		Held:     "Held",
		Reserved: "Reserved",
	}
}

// Validate checks if the Status value is valid. Unknown is invalid.
func (s Status) Validate() error {
	if s != Listed && s != Held && s != Reserved {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its persisted string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}
