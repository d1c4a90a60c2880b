package queries

import (
	"errors"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrGetPlatformStatusQueryIsNotConstructed = errors.New(
		"GetPlatformStatusQuery must be created via NewGetPlatformStatusQuery constructor",
	)
)

// GetPlatformStatusQuery retrieves the simulation clock and the vintage
// profit ledger.
type GetPlatformStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlatformStatusQuery creates a query for the platform status.
func NewGetPlatformStatusQuery() GetPlatformStatusQuery {
	return GetPlatformStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPlatformStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformStatusQueryIsNotConstructed)
}

// GetPlatformStatusQueryResponse represents the platform in the read model.
type GetPlatformStatusQueryResponse struct {
	CurrentDate   kernel.Date
	VintageProfit float64
}
