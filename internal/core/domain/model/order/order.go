package order

import (
	"errors"
	"fmt"
	"strings"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer_name")
	ErrDestinationIsRequired  = errs.NewValueIsRequiredError("destination")
	ErrCourierIsRequired      = errs.NewValueIsRequiredError("courier")
	ErrIDIsAlreadyBound       = errors.New("order id is already bound")
)

// Order represents a customer order with its allocated courier. It is the aggregate root
// of the order lifecycle.
//
// Order follows these invariants:
//   - customer name, destination and courier are non-blank
//   - weight is a valid kernel.Weight
//   - courier never changes after construction
//   - id is zero until storage binds the generated sequence value, then immutable
//   - status changes go through ChangeStatus and a TransitionPolicy
type Order struct {
	id           int64
	customerName string
	destination  string
	weight       kernel.Weight
	courier      string
	status       Status
	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a Pending order for a courier chosen by the allocator.
//
// Example:
//
//	weight, _ := kernel.NewWeight(8)
//	o, err := order.NewOrder("Asha", "Metro City", weight, "BlueDart")
//	if err != nil {
//	    // Handle validation error
//	}
//	// o.ID() is 0 until the repository stores it
func NewOrder(customerName, destination string, weight kernel.Weight, courier string) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setDestination(destination),
		o.setWeight(weight),
		o.setCourier(courier),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. Status is taken as stored: in legacy mode
// it may hold values outside the lifecycle graph.
func RestoreOrder(
	id int64,
	customerName, destination string,
	weight kernel.Weight,
	courier string,
	status Status,
) (*Order, error) {
	o, err := NewOrder(customerName, destination, weight, courier)
	if err != nil {
		return nil, err
	}

	if err = o.BindID(id); err != nil {
		return nil, err
	}

	if status == "" {
		return nil, ErrStatusIsRequired
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, or 0 for an unsaved order.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerName returns the name of the ordering customer.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Destination returns the free-text delivery destination.
func (o *Order) Destination() string {
	return o.destination
}

// Weight returns the parcel weight.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// Courier returns the allocated courier name.
func (o *Order) Courier() string {
	return o.courier
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// BindID attaches the storage-generated id. It may be called once, with a positive id.
func (o *Order) BindID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 {
		return fmt.Errorf("%w: %d", ErrIDIsAlreadyBound, o.id)
	}
	o.id = id
	return nil
}

// ChangeStatus moves the order to next if policy allows it.
//
// Example:
//
//	if err := o.ChangeStatus(order.InTransit, order.StrictTransitions); err != nil {
//	    // errors.Is(err, order.ErrInvalidTransition)
//	}
func (o *Order) ChangeStatus(next Status, policy TransitionPolicy) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := policy.Validate(o.status, next); err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationIsRequired
	}
	o.destination = destination
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setCourier(courier string) error {
	courier = strings.TrimSpace(courier)
	if courier == "" {
		return ErrCourierIsRequired
	}
	o.courier = courier
	return nil
}
