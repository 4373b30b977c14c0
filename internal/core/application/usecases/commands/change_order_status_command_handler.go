package commands

import (
	"context"

	"orderintake/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies status changes under the configured
// transition policy.
//
// The order row is locked for the duration of the transaction, so two concurrent
// changes of the same order are applied one after the other against fresh state.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, order.StrictTransitions)
//	cmd, _ := NewChangeOrderStatusCommand(42, "Delivered")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // rejected by strict policy
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
}

// NewChangeOrderStatusCommandHandler creates a handler bound to a transition policy.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle loads the order under lock, validates the change and stores the new status.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	current, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = current.ChangeStatus(cmd.Status(), h.policy); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, current.ID(), current.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
