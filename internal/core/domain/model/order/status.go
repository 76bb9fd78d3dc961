package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a print order.
//
// State graph:
//
//	pending ──> processing ──> completed
//	   │            │
//	   └────────────┴──────> cancelled
//
// Administrators are allowed to correct mistakes, so the transition table
// below currently permits every move between valid statuses (including
// backwards ones). Tightening the workflow later is a table edit, not a
// code change.
type Status string

const (
	// StatusPending is the initial status assigned at order creation.
	StatusPending Status = "pending"

	// StatusProcessing indicates staff picked the order up for printing.
	StatusProcessing Status = "processing"

	// StatusCompleted indicates the order was printed and handed over.
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the order was abandoned or rejected.
	StatusCancelled Status = "cancelled"
)

// statusTransitions is the explicit transition-validity table.
// Every valid status is currently reachable from every other.
var statusTransitions = map[Status]map[Status]bool{
	StatusPending:    {StatusPending: true, StatusProcessing: true, StatusCompleted: true, StatusCancelled: true},
	StatusProcessing: {StatusPending: true, StatusProcessing: true, StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {StatusPending: true, StatusProcessing: true, StatusCompleted: true, StatusCancelled: true},
	StatusCancelled:  {StatusPending: true, StatusProcessing: true, StatusCompleted: true, StatusCancelled: true},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}
}

// ParseStatus converts a raw string into a Status.
// Returns an error for any value outside the closed enumeration.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks that the Status value belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := statusTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// CanTransitionTo reports whether moving from s to next is allowed
// by the transition table. Both statuses must be valid.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	return allowed[next]
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
