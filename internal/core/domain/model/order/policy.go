package order

import (
	"fmt"
	"strings"

	"orderintake/internal/pkg/errs"
)

// ErrStatusIsRequired is returned when a blank status is requested.
var ErrStatusIsRequired = errs.NewValueIsRequiredError("status")

// TransitionPolicy decides which status changes are accepted.
type TransitionPolicy int

const (
	// StrictTransitions enforces the lifecycle graph.
	StrictTransitions TransitionPolicy = iota + 1
	// LegacyTransitions accepts any non-blank status string, for clients that still
	// treat status as free-form text.
	LegacyTransitions
)

// ParseTransitionPolicy maps configuration values "strict" and "legacy" (case-insensitive).
func ParseTransitionPolicy(raw string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict":
		return StrictTransitions, nil
	case "legacy":
		return LegacyTransitions, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition policy",
			fmt.Errorf("%q is not one of strict, legacy", raw),
		)
	}
}

// String implements fmt.Stringer.
func (p TransitionPolicy) String() string {
	switch p {
	case StrictTransitions:
		return "strict"
	case LegacyTransitions:
		return "legacy"
	default:
		return "unknown"
	}
}

// Validate checks a change from current to next under the policy.
func (p TransitionPolicy) Validate(current, next Status) error {
	if next == "" {
		return ErrStatusIsRequired
	}

	switch p {
	case LegacyTransitions:
		return nil
	case StrictTransitions:
		return current.ValidateTransition(next)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition policy",
			fmt.Errorf("%d is not a valid policy", int(p)),
		)
	}
}
