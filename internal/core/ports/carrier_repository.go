package ports

import (
	"context"

	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
// Carriers are looked up by name everywhere items and orders reference them.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetByName retrieves a carrier aggregate by its unique name.
	GetByName(ctx context.Context, name string) (*carrier.Carrier, error)

	// GetAll retrieves every registered carrier.
	GetAll(ctx context.Context) ([]*carrier.Carrier, error)
}
