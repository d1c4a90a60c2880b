// Package billrepo provides data transfer objects and mapping functions for
// bill persistence. Bills store the totals computed at settlement; the lines
// are kept for display only and are never replayed.
package billrepo

import (
	"vintage/internal/core/domain/model/bill"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// BillDTO represents the database structure for persisting bill aggregates.
type BillDTO struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Kind      string        `gorm:"type:varchar(32);not null"`
	OwnerID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	TotalCost float64       `gorm:"not null"`
	PortsTax  float64       `gorm:"not null"`
	Lines     []BillLineDTO `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for bill entities.
func (BillDTO) TableName() string {
	return "bills"
}

// BillLineDTO represents one billed item line.
type BillLineDTO struct {
	BillID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID       uuid.UUID `gorm:"type:uuid;not null"`
	CarrierName    string    `gorm:"type:varchar(255);not null"`
	BasePrice      float64   `gorm:"not null"`
	Price          float64   `gorm:"not null"`
	ConditionScore float64   `gorm:"not null"`
}

// TableName specifies the database table name for bill line entities.
func (BillLineDTO) TableName() string {
	return "bill_lines"
}

func fromDomain(b *bill.Bill) BillDTO {
	billID := b.ID().Bytes()
	lines := make([]BillLineDTO, 0, len(b.Lines()))
	for _, line := range b.Lines() {
		lines = append(lines, BillLineDTO{
			BillID:         billID,
			ItemID:         line.ItemID().Bytes(),
			SellerID:       line.SellerID().Bytes(),
			CarrierName:    line.CarrierName(),
			BasePrice:      line.BasePrice(),
			Price:          line.Price(),
			ConditionScore: line.ConditionScore(),
		})
	}

	return BillDTO{
		ID:        billID,
		Kind:      b.Kind().String(),
		OwnerID:   b.OwnerID().Bytes(),
		OrderID:   b.OrderID().Bytes(),
		TotalCost: b.TotalCost(),
		PortsTax:  b.PortsTax(),
		Lines:     lines,
	}
}

func toDomain(dto BillDTO) (*bill.Bill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := bill.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.ItemLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return bill.RestoreBill(id, kind, ownerID, orderID, lines, dto.TotalCost, dto.PortsTax)
}

func lineToDomain(dto BillLineDTO) (order.ItemLine, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.ItemLine{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return order.ItemLine{}, err
	}

	return order.NewItemLine(itemID, sellerID, dto.CarrierName, dto.BasePrice, dto.Price, dto.ConditionScore)
}
