package queries

import (
	"context"

	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders straight from the orders table.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if errors.Is(err, errs.ErrStorageFailure) {
//	    // database unavailable
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns all orders ordered by id. An empty store yields an empty, non-nil slice.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			destination,
			weight,
			courier,
			status
		FROM orders
		ORDER BY id
	`).Scan(&orders).Error
	if err != nil {
		return nil, errs.NewStorageFailureError("list orders", err)
	}

	return orders, nil
}
