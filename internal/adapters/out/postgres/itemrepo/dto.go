// Package itemrepo provides data transfer objects and mapping functions for
// item persistence. The ownership log is stored in a child table so the
// return flow can walk an item's full hand-over history.
package itemrepo

import (
	"time"

	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting item aggregates.
type ItemDTO struct {
	ID             uuid.UUID            `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID            `gorm:"type:uuid;not null;index"`
	CarrierName    string               `gorm:"type:varchar(255);not null"`
	Description    string               `gorm:"type:varchar(255);not null"`
	Brand          string               `gorm:"type:varchar(255)"`
	BasePrice      float64              `gorm:"not null"`
	Price          float64              `gorm:"not null;index"`
	ConditionScore float64              `gorm:"not null"`
	Status         string               `gorm:"type:varchar(32);not null;index"`
	OwnershipLog   []OwnershipRecordDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// OwnershipRecordDTO represents one entry of an item's ownership history.
// Seq preserves the append order of the log.
type OwnershipRecordDTO struct {
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq      int       `gorm:"primaryKey;autoIncrement:false"`
	OwnerID  uuid.UUID `gorm:"type:uuid;not null"`
	HeldFrom time.Time `gorm:"type:date;not null"`
}

// TableName specifies the database table name for ownership record entities.
func (OwnershipRecordDTO) TableName() string {
	return "item_ownership_records"
}

func fromDomain(it *item.Item) ItemDTO {
	itemID := it.ID().Bytes()
	log := it.OwnershipLog()
	records := make([]OwnershipRecordDTO, 0, len(log))
	for i, record := range log {
		records = append(records, OwnershipRecordDTO{
			ItemID:   itemID,
			Seq:      i,
			OwnerID:  record.OwnerID().Bytes(),
			HeldFrom: record.From().Time(),
		})
	}

	return ItemDTO{
		ID:             itemID,
		OwnerID:        it.OwnerID().Bytes(),
		CarrierName:    it.CarrierName(),
		Description:    it.Description(),
		Brand:          it.Brand(),
		BasePrice:      it.BasePrice(),
		Price:          it.Price(),
		ConditionScore: it.ConditionScore(),
		Status:         it.Status().String(),
		OwnershipLog:   records,
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := item.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	log := make([]item.OwnershipRecord, 0, len(dto.OwnershipLog))
	for _, recordDto := range dto.OwnershipLog {
		record, recordErr := recordToDomain(recordDto)
		if recordErr != nil {
			return nil, recordErr
		}
		log = append(log, record)
	}

	return item.RestoreItem(
		id,
		ownerID,
		dto.CarrierName,
		dto.Description,
		dto.Brand,
		dto.BasePrice,
		dto.Price,
		dto.ConditionScore,
		status,
		log,
	)
}

func recordToDomain(dto OwnershipRecordDTO) (item.OwnershipRecord, error) {
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return item.OwnershipRecord{}, err
	}

	return item.NewOwnershipRecord(ownerID, kernel.DateFromTime(dto.HeldFrom))
}
