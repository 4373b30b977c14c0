package kernel

import (
	"fmt"
	"math"

	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight constructor")

// Weight is an immutable, strictly positive, finite parcel weight.
// The unit is whatever the rule table is expressed in; the service never converts it.
//
// Example:
//
//	w, err := kernel.NewWeight(8)
//	if err != nil {
//	    // Handle validation error
//	}
//	limit, _ := kernel.NewWeight(10)
//	w.Fits(limit) // true
type Weight struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewWeight validates value and wraps it into a Weight.
//
// Returns:
//   - Weight: a valid weight
//   - error: ValueIsInvalidError when value is zero, negative, NaN or infinite
func NewWeight(value float64) (Weight, error) {
	w := Weight{guard: guard.NewConstructorGuard()}
	if err := w.setValue(value); err != nil {
		return Weight{}, err
	}
	return w, nil
}

// MustNewWeight is NewWeight for static configuration; it panics on invalid input.
func MustNewWeight(value float64) Weight {
	w, err := NewWeight(value)
	if err != nil {
		panic(err)
	}
	return w
}

// Validate reports whether the weight was built through NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Value returns the raw weight.
func (w Weight) Value() float64 {
	return w.value
}

// Fits reports whether w is within limit. The bound is inclusive: a weight equal to
// the limit fits.
func (w Weight) Fits(limit Weight) bool {
	return w.value <= limit.value
}

// IsEqual compares two weights by value.
func (w Weight) IsEqual(other Weight) bool {
	return w.value == other.value
}

// String implements fmt.Stringer.
func (w Weight) String() string {
	return fmt.Sprintf("Weight(%g)", w.value)
}

func (w *Weight) setValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a finite number", value))
	}
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", value))
	}
	w.value = value
	return nil
}
