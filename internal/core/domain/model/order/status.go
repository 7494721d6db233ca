package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Completed
//	   │            │
//	   └──> Cancelled <──┘   (admin action only)
//
// Cancelled and Completed are terminal; an order never leaves them.
// The numeric values are the persisted status column and part of the API.
type Status int

const (
	// Pending is the initial status when a shop creates an order.
	Pending Status = 0

	// Accepted indicates a driver took the order and is delivering it.
	Accepted Status = 1

	// Cancelled indicates an administrator withdrew the order. Terminal.
	Cancelled Status = 2

	// Completed indicates the order was delivered. Terminal.
	Completed Status = 3
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Cancelled: "Cancelled",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is defined from the status.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Completed
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Returns an error for any other starting state.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Accepted -> Completed
//
// Returns an error for any other starting state.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//
// Returns an error for terminal starting states.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
