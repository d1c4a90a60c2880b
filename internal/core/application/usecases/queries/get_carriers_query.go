// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrGetCarriersQueryIsNotConstructed = errors.New(
		"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
	)
)

// GetCarriersQuery retrieves every registered carrier with its tier rates
// and accumulated earnings.
type GetCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a query to retrieve all carriers.
func NewGetCarriersQuery() GetCarriersQuery {
	return GetCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// GetCarriersQueryResponse represents carrier information in the read model.
type GetCarriersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	TaxSmall     float64
	TaxMedium    float64
	TaxBig       float64
	TotalEarning float64
}
