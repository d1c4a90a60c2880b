// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"vintage/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest unit of work that covers
// the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BillRepoFactory provides access to the bill repository within a transaction.
	BillRepoFactory interface {
		BillRepository() ports.BillRepository
	}

	// PlatformRepoFactory provides access to the platform repository within a transaction.
	PlatformRepoFactory interface {
		PlatformRepository() ports.PlatformRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// ItemUoW manages transactions for item listing, which also reads
	// users and carriers for validation.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
		CarrierRepoFactory
		UserRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// OrderUoW manages transactions for order composition: the order
	// itself, the items it snapshots, and the platform clock for dating.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
		PlatformRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across every aggregate. Used by the clock
	// advance and the return flow, which each touch orders, items,
	// carriers, bills, and the platform in one business transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
		CarrierRepoFactory
		BillRepoFactory
		PlatformRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
