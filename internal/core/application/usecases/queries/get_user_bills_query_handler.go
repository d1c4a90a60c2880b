package queries

import (
	"context"

	"vintage/internal/core/domain/model/bill"
	"vintage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserBillsQueryHandler retrieves a user's bills from the database.
type GetUserBillsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserBillsQueryHandler creates a handler for bill retrieval queries.
func NewGetUserBillsQueryHandler(db *gorm.DB) GetUserBillsQueryHandler {
	return GetUserBillsQueryHandler{db: db}
}

// Handle executes the query. Sold bills report zero shipping tax and pay
// out the seller's share; bought bills charge costs plus shipping.
func (h GetUserBillsQueryHandler) Handle(
	ctx context.Context,
	query GetUserBillsQuery,
) ([]GetUserBillsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bills := make([]GetUserBillsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			order_id,
			total_cost,
			ports_tax
		FROM bills
		WHERE owner_id = ?
		ORDER BY id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUserBillsQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&response.Kind,
			&orderID,
			&response.TotalCost,
			&response.PortsTax,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		if response.Kind == bill.Sold.String() {
			response.PortsTax = 0
			response.Amount = response.TotalCost * bill.SellerPayoutRate
		} else {
			response.Amount = response.PortsTax + response.TotalCost
		}
		bills = append(bills, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bills, nil
}
