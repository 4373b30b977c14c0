package queries

import (
	"errors"

	"orderintake/internal/pkg/guard"
)

var ErrGetOrderStatusSummaryQueryIsNotConstructed = errors.New(
	"GetOrderStatusSummaryQuery must be created via NewGetOrderStatusSummaryQuery constructor",
)

// GetOrderStatusSummaryQuery counts stored orders per status.
type GetOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusSummaryQuery creates a query for per-status order counts.
func NewGetOrderStatusSummaryQuery() GetOrderStatusSummaryQuery {
	return GetOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusSummaryQueryIsNotConstructed)
}

// GetOrderStatusSummaryQueryResponse is the count of orders holding one status.
type GetOrderStatusSummaryQueryResponse struct {
	Status string
	Count  int64
}
