package ports

import (
	"context"

	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates,
// including their append-only ownership logs.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAllListed retrieves every item currently for sale.
	GetAllListed(ctx context.Context) ([]*item.Item, error)
}
