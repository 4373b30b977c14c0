package rule

import (
	"errors"
	"strings"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

var (
	ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")
	ErrCourierIsRequired    = errs.NewValueIsRequiredError("courier")
	ErrRegionIsRequired     = errs.NewValueIsRequiredError("region")
)

// Rule says that Courier accepts parcels up to MaxWeight bound for destinations
// containing Region.
type Rule struct { //nolint:recvcheck //using for validation
	courier   string
	maxWeight kernel.Weight
	region    string
	guard     guard.ConstructorGuard
}

// NewRule validates and builds a Rule. Courier and region are trimmed of surrounding
// whitespace and must not be blank.
func NewRule(courier string, maxWeight kernel.Weight, region string) (Rule, error) {
	r := Rule{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setCourier(courier),
		r.setMaxWeight(maxWeight),
		r.setRegion(region),
	); err != nil {
		return Rule{}, err
	}

	return r, nil
}

// Validate ensures the rule was created through NewRule.
func (r Rule) Validate() error {
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

// Courier returns the courier name.
func (r Rule) Courier() string {
	return r.courier
}

// MaxWeight returns the inclusive upper weight bound.
func (r Rule) MaxWeight() kernel.Weight {
	return r.maxWeight
}

// Region returns the region fragment matched against destinations.
func (r Rule) Region() string {
	return r.region
}

// Matches reports whether an order of the given weight bound for destination is
// eligible under this rule. Matching is plain, case-sensitive substring containment.
func (r Rule) Matches(weight kernel.Weight, destination string) bool {
	return weight.Fits(r.maxWeight) && strings.Contains(destination, r.region)
}

func (r *Rule) setCourier(courier string) error {
	courier = strings.TrimSpace(courier)
	if courier == "" {
		return ErrCourierIsRequired
	}
	r.courier = courier
	return nil
}

func (r *Rule) setMaxWeight(maxWeight kernel.Weight) error {
	if err := maxWeight.Validate(); err != nil {
		return err
	}
	r.maxWeight = maxWeight
	return nil
}

func (r *Rule) setRegion(region string) error {
	region = strings.TrimSpace(region)
	if region == "" {
		return ErrRegionIsRequired
	}
	r.region = region
	return nil
}
