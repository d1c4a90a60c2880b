package queries

import (
	"context"

	"vintage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetListedItemsQueryHandler retrieves the catalog of items for sale.
type GetListedItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetListedItemsQueryHandler creates a handler for catalog queries.
func NewGetListedItemsQueryHandler(db *gorm.DB) GetListedItemsQueryHandler {
	return GetListedItemsQueryHandler{db: db}
}

// Handle executes the query. Returns catalog read models sorted by price.
func (h GetListedItemsQueryHandler) Handle(
	ctx context.Context,
	query GetListedItemsQuery,
) ([]GetListedItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetListedItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			brand,
			price,
			carrier_name
		FROM items
		WHERE status = 'Listed'
		ORDER BY price, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetListedItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Description,
			&response.Brand,
			&response.Price,
			&response.CarrierName,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		items = append(items, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
