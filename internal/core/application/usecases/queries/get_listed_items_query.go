package queries

import (
	"errors"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrGetListedItemsQueryIsNotConstructed = errors.New(
		"GetListedItemsQuery must be created via NewGetListedItemsQuery constructor",
	)
)

// GetListedItemsQuery retrieves every item currently for sale.
type GetListedItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetListedItemsQuery creates a query to retrieve the catalog.
func NewGetListedItemsQuery() GetListedItemsQuery {
	return GetListedItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetListedItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetListedItemsQueryIsNotConstructed)
}

// GetListedItemsQueryResponse represents one catalog entry in the read model.
type GetListedItemsQueryResponse struct {
	ID          kernel.UUID
	Description string
	Brand       string
	Price       float64
	CarrierName string
}
