// Package postgres provides GORM-based persistence adapters implementing the
// outbound ports of the marketplace core. It contains the unit of work that
// scopes every command to a single database transaction, plus one repository
// package per aggregate.
package postgres

import (
	"context"

	"vintage/internal/adapters/out/postgres/billrepo"
	"vintage/internal/adapters/out/postgres/carrierrepo"
	"vintage/internal/adapters/out/postgres/itemrepo"
	"vintage/internal/adapters/out/postgres/orderrepo"
	"vintage/internal/adapters/out/postgres/platformrepo"
	"vintage/internal/adapters/out/postgres/userrepo"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates GormUnitOfWork instances bound to a shared
// database connection. Each command handler gets its own unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a new unit of work factory.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// trackedAggregate pairs an aggregate with its identifier for change tracking.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWork implements the UnitOfWork port using GORM transactions.
// Repositories obtained from it operate on the active transaction when one
// exists and on the base connection otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new transaction. Calling Begin with a transaction already
// active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits the active transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	return err
}

// Rollback discards the active transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	return err
}

// TrackAggregate records an aggregate touched during the current transaction.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// CarrierRepository returns a carrier repository bound to the current transaction.
func (uow *GormUnitOfWork) CarrierRepository() ports.CarrierRepository {
	return carrierrepo.NewGormCarrierRepository(uow.conn(), uow)
}

// ItemRepository returns an item repository bound to the current transaction.
func (uow *GormUnitOfWork) ItemRepository() ports.ItemRepository {
	return itemrepo.NewGormItemRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// BillRepository returns a bill repository bound to the current transaction.
func (uow *GormUnitOfWork) BillRepository() ports.BillRepository {
	return billrepo.NewGormBillRepository(uow.conn(), uow)
}

// PlatformRepository returns a platform repository bound to the current transaction.
func (uow *GormUnitOfWork) PlatformRepository() ports.PlatformRepository {
	return platformrepo.NewGormPlatformRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
