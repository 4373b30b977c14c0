package queries

import (
	"errors"

	"orderintake/internal/pkg/guard"
)

var ErrGetCourierRulesQueryIsNotConstructed = errors.New(
	"GetCourierRulesQuery must be created via NewGetCourierRulesQuery constructor",
)

// GetCourierRulesQuery exposes the allocation rule table, in evaluation order.
type GetCourierRulesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCourierRulesQuery creates a query to read the rule table.
func NewGetCourierRulesQuery() GetCourierRulesQuery {
	return GetCourierRulesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCourierRulesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierRulesQueryIsNotConstructed)
}

// GetCourierRulesQueryResponse is one allocation rule.
type GetCourierRulesQueryResponse struct {
	Courier   string
	MaxWeight float64
	Region    string
}
