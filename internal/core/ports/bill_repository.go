package ports

import (
	"context"

	"vintage/internal/core/domain/model/bill"
	"vintage/internal/core/domain/model/kernel"
)

// BillRepository defines the persistence contract for bill aggregates.
type BillRepository interface {
	// Add persists a new bill aggregate to storage.
	Add(ctx context.Context, aggregate *bill.Bill) error

	// Get retrieves a bill aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error)

	// GetAllByOwner retrieves every bill addressed to the given user.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*bill.Bill, error)

	// DeleteByOrder removes every bill the given order produced, on both
	// the buyer and the seller side. Used by the return flow.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
