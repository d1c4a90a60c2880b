package order

import (
	"fmt"

	"vintage/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct settlement workflow.
//
// State transitions:
//
//	Pending ──> Finished ──> Dispatched
//
// Pending orders accept item changes. Finishing hands the items over to the
// buyer. Dispatching settles the order: bills are emitted and carrier
// earnings accrue. Dispatched is the final state of the forward path; the
// only way back is the explicit return flow, which removes the order
// entirely rather than transitioning it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status while the buyer is still composing the
	// order. Items may be added and removed.
	Pending

	// Finished indicates ownership of the items has moved to the buyer.
	// The order is waiting out the settlement delay.
	Finished

	// Dispatched indicates the order has settled: bills exist and carrier
	// earnings have accrued. No further transitions are allowed.
	Dispatched
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Finished:   "Finished",
		Dispatched: "Dispatched",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Finished:   "Finished",
		Dispatched: "Dispatched",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Finished, Dispatched.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its persisted string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Finish transitions the status to Finished.
//
// Valid transitions:
//   - Pending -> Finished
//
// Any other source status is invalid: an order never moves backward and
// never skips the handover step.
func (s Status) Finish() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to finish", s.String()),
		)
	}

	return Finished, nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Finished -> Dispatched
//
// Pending orders must finish first; Dispatched is final.
func (s Status) Dispatch() (Status, error) {
	if s != Finished {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}

	return Dispatched, nil
}
