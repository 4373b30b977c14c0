package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition is returned when a status change violates the lifecycle graph.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──────> Cancelled
//
// Forward moves may skip a state (Pending -> Delivered). Delivered and Cancelled are
// terminal. Status is string-backed because legacy mode stores arbitrary values.
type Status string

const (
	Pending   Status = "Pending"
	InTransit Status = "InTransit"
	Delivered Status = "Delivered"
	Cancelled Status = "Cancelled"
)

// lifecycleRank orders the forward path. Cancelled is deliberately absent.
//
//nolint:gochecknoglobals // read-only lookup
var lifecycleRank = map[Status]int{
	Pending:   0,
	InTransit: 1,
	Delivered: 2,
}

// ParseStatus trims raw and returns it as a Status. Unknown values are allowed here;
// whether they are accepted is up to the TransitionPolicy.
func ParseStatus(raw string) Status {
	return Status(strings.TrimSpace(raw))
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsKnown reports whether s is one of the lifecycle states.
func (s Status) IsKnown() bool {
	_, forward := lifecycleRank[s]
	return forward || s == Cancelled
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateTransition checks that moving from s to next follows the lifecycle graph.
//
// Valid transitions:
//   - any forward move along Pending -> InTransit -> Delivered
//   - Pending or InTransit -> Cancelled
//
// Returns an error wrapping ErrInvalidTransition otherwise, including for unknown
// current or next states and for same-state "moves".
func (s Status) ValidateTransition(next Status) error {
	if !s.IsKnown() || s.IsTerminal() {
		return fmt.Errorf("%w: no transitions allowed from %q", ErrInvalidTransition, s)
	}

	if next == Cancelled {
		return nil
	}

	nextRank, ok := lifecycleRank[next]
	if !ok {
		return fmt.Errorf("%w: %q is not a lifecycle status", ErrInvalidTransition, next)
	}

	if nextRank <= lifecycleRank[s] {
		return fmt.Errorf("%w: %s -> %s is not a forward move", ErrInvalidTransition, s, next)
	}

	return nil
}
