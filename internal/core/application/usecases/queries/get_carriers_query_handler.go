package queries

import (
	"context"

	"vintage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarriersQueryHandler retrieves carrier information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarriersQueryHandler creates a handler for carrier retrieval queries.
func NewGetCarriersQueryHandler(db *gorm.DB) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{db: db}
}

// Handle executes the query. Returns carrier read models sorted by name.
func (h GetCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetCarriersQuery,
) ([]GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]GetCarriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			tax_small,
			tax_medium,
			tax_big,
			total_earning
		FROM carriers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var carrier GetCarriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&carrier.Name,
			&carrier.TaxSmall,
			&carrier.TaxMedium,
			&carrier.TaxBig,
			&carrier.TotalEarning,
		)
		if err != nil {
			return nil, err
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		carrier.ID = carrierID
		carriers = append(carriers, carrier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
