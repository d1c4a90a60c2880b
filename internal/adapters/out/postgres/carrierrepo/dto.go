// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence, including the running earnings ledger.
package carrierrepo

import (
	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates. The three tax columns hold the tier commission fractions and
// total_earning holds the accumulated ledger balance.
type CarrierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	TaxSmall     float64   `gorm:"not null"`
	TaxMedium    float64   `gorm:"not null"`
	TaxBig       float64   `gorm:"not null"`
	TotalEarning float64   `gorm:"not null"`
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(shipper *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:           shipper.ID().Bytes(),
		Name:         shipper.Name(),
		TaxSmall:     shipper.TaxSmall(),
		TaxMedium:    shipper.TaxMedium(),
		TaxBig:       shipper.TaxBig(),
		TotalEarning: shipper.TotalEarning(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, dto.TaxSmall, dto.TaxMedium, dto.TaxBig, dto.TotalEarning)
}
