package ports

import (
	"context"

	"vintage/internal/core/domain/model/platform"
)

// PlatformRepository defines the persistence contract for the singleton
// platform aggregate.
type PlatformRepository interface {
	// Get retrieves the platform aggregate.
	Get(ctx context.Context) (*platform.Platform, error)

	// Update persists changes to the platform aggregate.
	Update(ctx context.Context, aggregate *platform.Platform) error
}
