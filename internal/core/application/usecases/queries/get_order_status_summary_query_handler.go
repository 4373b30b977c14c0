package queries

import (
	"context"

	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusSummaryQueryHandler aggregates order counts by status.
type GetOrderStatusSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusSummaryQueryHandler creates a handler for status summaries.
func NewGetOrderStatusSummaryQueryHandler(db *gorm.DB) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{db: db}
}

// Handle returns one row per status present in storage, sorted by status.
func (h GetOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusSummaryQuery,
) ([]GetOrderStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make([]GetOrderStatusSummaryQueryResponse, 0)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS count
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Scan(&summary).Error
	if err != nil {
		return nil, errs.NewStorageFailureError("summarize order statuses", err)
	}

	return summary, nil
}
