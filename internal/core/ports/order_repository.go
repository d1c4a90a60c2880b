package ports

import (
	"context"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order aggregate and its lines. Returning an order
	// erases it rather than transitioning it.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPendingStatus retrieves every order still composing.
	// The scheduler finishes these once their day has passed.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllInFinishedStatus retrieves every order waiting out the
	// settlement delay.
	GetAllInFinishedStatus(ctx context.Context) ([]*order.Order, error)
}
