package commands

import (
	"context"

	"orderintake/internal/core/domain/model/order"
)

// CreateOrderResult carries what the caller needs to acknowledge a created order.
type CreateOrderResult struct {
	OrderID int64
	Courier string
}

// CreateOrderCommandHandler allocates a courier and persists the new order.
//
// Creation is all-or-nothing: the allocator runs before any transaction is opened, so
// an allocation failure leaves storage untouched.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, allocator)
//	cmd, _ := NewCreateOrderCommand("Ravi", "Urban Zone", 15)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	allocator  CourierAllocator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, allocator CourierAllocator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle processes the order creation command.
// Returns services.ErrNoSuitableCourier, unmodified, when allocation fails.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	courier, err := h.allocator.Allocate(cmd.Weight(), cmd.Destination())
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerName(), cmd.Destination(), cmd.Weight(), courier)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID: newOrder.ID(),
		Courier: newOrder.Courier(),
	}, nil
}
