package bill

import (
	"fmt"

	"vintage/internal/pkg/errs"
)

// Kind tells which side of a settled order a bill documents.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	Unknown Kind = iota

	// Bought is issued to the buyer of an order. It carries the shipping tax
	// on top of the item costs.
	Bought

	// Sold is issued to a seller for their share of an order. The platform
	// keeps a cut of the proceeds.
	Sold
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown: "Unknown",
		Bought:  "Bought",
		Sold:    "Sold",
	}
}

// Validate checks if the Kind value is valid. Unknown is invalid.
func (k Kind) Validate() error {
	if k != Bought && k != Sold {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := kindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a kind from its persisted string form.
func KindFromString(s string) (Kind, error) {
	for kind, str := range kindStrings() {
		if str == s && kind != Unknown {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid kind", s))
}
