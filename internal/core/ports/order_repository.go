// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orderintake/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Failure reporting:
//   - errs.ErrObjectNotFound when the referenced id does not exist
//   - errs.ErrStorageFailure when the underlying store fails
type OrderRepository interface {
	// Add persists a new order and binds the generated sequential id onto it.
	// The order must be valid and must not have an id yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetForUpdate loads an order and locks it until the surrounding transaction ends,
	// serializing concurrent status changes of the same order.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus overwrites the stored status without lifecycle validation.
	// Returns an ObjectNotFoundError when no row has the given id.
	UpdateStatus(ctx context.Context, id int64, status order.Status) error
}
