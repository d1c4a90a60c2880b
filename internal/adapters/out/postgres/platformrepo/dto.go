// Package platformrepo provides data transfer objects and mapping functions
// for the singleton platform row holding the simulation clock and the
// accumulated marketplace profit.
package platformrepo

import (
	"time"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/platform"

	"github.com/google/uuid"
)

// PlatformDTO represents the database structure for persisting the platform
// aggregate. The table holds exactly one row.
type PlatformDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CurrentDay    time.Time `gorm:"type:date;not null"`
	VintageProfit float64   `gorm:"not null"`
}

// TableName specifies the database table name for the platform entity.
func (PlatformDTO) TableName() string {
	return "platforms"
}

func fromDomain(vintage *platform.Platform) PlatformDTO {
	return PlatformDTO{
		ID:            vintage.ID().Bytes(),
		CurrentDay:    vintage.CurrentDate().Time(),
		VintageProfit: vintage.VintageProfit(),
	}
}

func toDomain(dto PlatformDTO) (*platform.Platform, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return platform.RestorePlatform(id, kernel.DateFromTime(dto.CurrentDay), dto.VintageProfit)
}
