package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPlatformStatusQueryHandler retrieves the platform read model.
type GetPlatformStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPlatformStatusQueryHandler creates a handler for status queries.
func NewGetPlatformStatusQueryHandler(db *gorm.DB) GetPlatformStatusQueryHandler {
	return GetPlatformStatusQueryHandler{db: db}
}

// Handle executes the query against the singleton platform row.
func (h GetPlatformStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPlatformStatusQuery,
) (GetPlatformStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlatformStatusQueryResponse{}, err
	}

	var response GetPlatformStatusQueryResponse
	var currentDay time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			current_day,
			vintage_profit
		FROM platforms
		LIMIT 1
	`).Row()

	if err := row.Scan(&currentDay, &response.VintageProfit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPlatformStatusQueryResponse{}, errs.NewObjectNotFoundError("platform", "singleton")
		}
		return GetPlatformStatusQueryResponse{}, err
	}

	response.CurrentDate = kernel.DateFromTime(currentDay)
	return response, nil
}
