package queries

import (
	"context"
	"time"

	"vintage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves not-yet-dispatched orders with
// their line totals.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns order read models oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			o.placed_on,
			o.status,
			COUNT(l.item_id),
			COALESCE(SUM(l.price), 0)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status <> 'Dispatched'
		GROUP BY o.id, o.buyer_id, o.placed_on, o.status
		ORDER BY o.placed_on, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveOrdersQueryResponse
		var id, buyerID uuid.UUID
		var placedOn time.Time

		err = rows.Scan(
			&id,
			&buyerID,
			&placedOn,
			&response.Status,
			&response.ItemCount,
			&response.TotalCost,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		response.Date = kernel.DateFromTime(placedOn)
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
