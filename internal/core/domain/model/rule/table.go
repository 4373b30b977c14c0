package rule

import (
	"errors"
	"fmt"
	"slices"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

var (
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")
	ErrTableIsEmpty          = errs.NewValueIsRequiredError("rule table needs at least one rule")
)

// Table is the ordered rule configuration consulted by the allocator.
// It is read-only after construction and safe for concurrent use.
type Table struct {
	rules []Rule
	guard guard.ConstructorGuard
}

// NewTable builds a table preserving the given order.
func NewTable(rules ...Rule) (Table, error) {
	if len(rules) == 0 {
		return Table{}, ErrTableIsEmpty
	}

	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return Table{}, fmt.Errorf("rule #%d: %w", i+1, err)
		}
	}

	return Table{
		rules: slices.Clone(rules),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DefaultTable returns the built-in rule set used when no rules file is configured.
func DefaultTable() Table {
	table, err := NewTable(
		mustNewRule("BlueDart", 10, "Metro"),
		mustNewRule("Delhivery", 20, "Urban"),
		mustNewRule("IndiaPost", 50, "Rural"),
	)
	if err != nil {
		panic(err)
	}
	return table
}

// Validate ensures the table was created through NewTable.
func (t Table) Validate() error {
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// Rules returns the rules in table order. The returned slice is a copy.
func (t Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// Len returns the number of rules.
func (t Table) Len() int {
	return len(t.rules)
}

// FirstMatch returns the earliest rule that matches weight and destination.
func (t Table) FirstMatch(weight kernel.Weight, destination string) (Rule, bool) {
	for _, r := range t.rules {
		if r.Matches(weight, destination) {
			return r, true
		}
	}
	return Rule{}, false
}

func mustNewRule(courier string, maxWeight float64, region string) Rule {
	r, err := NewRule(courier, kernel.MustNewWeight(maxWeight), region)
	if err != nil {
		panic(err)
	}
	return r
}
