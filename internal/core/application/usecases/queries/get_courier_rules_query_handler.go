package queries

import (
	"context"

	"orderintake/internal/core/domain/model/rule"
)

// GetCourierRulesQueryHandler reads the in-memory rule table. The table is immutable, so
// the handler needs no locking and never touches storage.
type GetCourierRulesQueryHandler struct {
	table rule.Table
}

// NewGetCourierRulesQueryHandler creates a handler over the table used for allocation.
func NewGetCourierRulesQueryHandler(table rule.Table) GetCourierRulesQueryHandler {
	return GetCourierRulesQueryHandler{table: table}
}

// Handle returns the rules in the order the allocator evaluates them.
func (h GetCourierRulesQueryHandler) Handle(
	_ context.Context,
	query GetCourierRulesQuery,
) ([]GetCourierRulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.table.Validate(); err != nil {
		return nil, err
	}

	rules := h.table.Rules()
	result := make([]GetCourierRulesQueryResponse, 0, len(rules))
	for _, r := range rules {
		result = append(result, GetCourierRulesQueryResponse{
			Courier:   r.Courier(),
			MaxWeight: r.MaxWeight().Value(),
			Region:    r.Region(),
		})
	}

	return result, nil
}
