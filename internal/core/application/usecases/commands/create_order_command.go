package commands

import (
	"errors"
	"strings"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer_name")
	ErrDestinationIsRequired  = errs.NewValueIsRequiredError("destination")
)

// CreateOrderCommand represents a request to register a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Asha", "Metro City", 8)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoSuitableCourier) {
//	    // nothing was stored
//	}
//	fmt.Printf("Order %d goes with %s", result.OrderID, result.Courier)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	destination  string
	weight       kernel.Weight

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that customer name and destination are not blank and
// that weight is a positive finite number.
func NewCreateOrderCommand(customerName, destination string, weight float64) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setDestination(destination),
		cmd.setWeight(weight),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the ordering customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Destination returns the delivery destination as submitted.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Weight returns the parcel weight.
func (c CreateOrderCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	w, err := kernel.NewWeight(weight)
	if err != nil {
		return err
	}

	c.weight = w
	return nil
}
