package billrepo

import (
	"context"
	"errors"

	"vintage/internal/core/domain/model/bill"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBillRepository implements BillRepository using GORM.
type GormBillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBillRepository creates a new GORM bill repository.
func NewGormBillRepository(db *gorm.DB, tracker aggregateTracker) *GormBillRepository {
	return &GormBillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bill to the database.
func (r *GormBillRepository) Add(ctx context.Context, aggregate *bill.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bill by ID.
func (r *GormBillRepository) Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOwner retrieves every bill addressed to the given user.
func (r *GormBillRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*bill.Bill, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BillDTO
	if err := r.db.WithContext(ctx).Preload("Lines").Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	bills := make([]*bill.Bill, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}

	return bills, nil
}

// DeleteByOrder removes every bill the given order produced. Returning an
// order erases its billing on both sides.
func (r *GormBillRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	var billIDs []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&BillDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Pluck("id", &billIDs).Error; err != nil {
		return err
	}

	if len(billIDs) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Where("bill_id IN ?", billIDs).Delete(&BillLineDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("id IN ?", billIDs).Delete(&BillDTO{}).Error
}
