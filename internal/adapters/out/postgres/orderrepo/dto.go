// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are stored with their item lines in a child
// table; the running aggregates are re-derived on load by replaying the
// lines through the domain constructor.
package orderrepo

import (
	"time"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BuyerID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	PlacedOn time.Time      `gorm:"type:date;not null"`
	Status   string         `gorm:"type:varchar(32);not null;index"`
	Lines    []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one item line of an order. The price columns are
// the snapshot taken when the item entered the order, not the live item row.
type OrderLineDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CarrierName    string    `gorm:"type:varchar(255);not null"`
	BasePrice      float64   `gorm:"not null"`
	Price          float64   `gorm:"not null"`
	ConditionScore float64   `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(ord *order.Order) OrderDTO {
	orderID := ord.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(ord.Lines()))
	for _, line := range ord.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:        orderID,
			ItemID:         line.ItemID().Bytes(),
			SellerID:       line.SellerID().Bytes(),
			CarrierName:    line.CarrierName(),
			BasePrice:      line.BasePrice(),
			Price:          line.Price(),
			ConditionScore: line.ConditionScore(),
		})
	}

	return OrderDTO{
		ID:       orderID,
		BuyerID:  ord.BuyerID().Bytes(),
		PlacedOn: ord.Date().Time(),
		Status:   ord.Status().String(),
		Lines:    lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
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

	return order.RestoreOrder(id, buyerID, kernel.DateFromTime(dto.PlacedOn), status, lines)
}

func lineToDomain(dto OrderLineDTO) (order.ItemLine, error) {
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
