package platformrepo

import (
	"context"
	"errors"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlatformRepository implements PlatformRepository using GORM.
type GormPlatformRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlatformRepository creates a new GORM platform repository.
func NewGormPlatformRepository(db *gorm.DB, tracker aggregateTracker) *GormPlatformRepository {
	return &GormPlatformRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the platform row.
func (r *GormPlatformRepository) Get(ctx context.Context) (*platform.Platform, error) {
	var dto PlatformDTO
	if err := r.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("platform", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves the platform row, creating it on first use.
func (r *GormPlatformRepository) Update(ctx context.Context, aggregate *platform.Platform) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
