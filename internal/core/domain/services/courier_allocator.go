package services

import (
	"errors"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/rule"
)

// ErrNoSuitableCourier is returned when no rule in the table accepts the order.
// The outcome is deterministic for a given table and input, so callers must not retry.
var ErrNoSuitableCourier = errors.New("no suitable courier found for the order")

// CourierAllocator is a domain service choosing the courier for a new order.
//
// Selection algorithm:
//   - walk the rule table in order
//   - pick the first rule whose max weight is >= the order weight and whose region
//     occurs in the destination
//   - the table order breaks ties; there is no best-fit or cost ranking
//
// Example usage:
//
//	allocator := NewCourierAllocator(rule.DefaultTable())
//	courier, err := allocator.Allocate(weight, "Metro City")
//	if errors.Is(err, ErrNoSuitableCourier) {
//	    // reject the order
//	}
type CourierAllocator struct {
	table rule.Table
}

// NewCourierAllocator creates an allocator bound to an immutable rule table.
func NewCourierAllocator(table rule.Table) CourierAllocator {
	return CourierAllocator{table: table}
}

// Allocate returns the courier for an order of the given weight and destination.
//
// Returns:
//   - string: courier name of the first matching rule
//   - error: ErrNoSuitableCourier when nothing matches, or a validation error for an
//     unconstructed weight or table
func (a CourierAllocator) Allocate(weight kernel.Weight, destination string) (string, error) {
	if err := weight.Validate(); err != nil {
		return "", err
	}

	if err := a.table.Validate(); err != nil {
		return "", err
	}

	matched, ok := a.table.FirstMatch(weight, destination)
	if !ok {
		return "", ErrNoSuitableCourier
	}

	return matched.Courier(), nil
}

// Table returns the rule table the allocator reads from.
func (a CourierAllocator) Table() rule.Table {
	return a.table
}
