package commands_test

import (
	"context"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/domain/model/bill"
	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/core/domain/model/user"
	"vintage/internal/core/ports"
	"vintage/internal/pkg/errs"
)

// fakeStore is an in-memory backing store for the multi-aggregate flows
// (clock advance, return) where scripted mocks would obscure the scenario.
type fakeStore struct {
	users    map[kernel.UUID]*user.User
	carriers map[string]*carrier.Carrier
	items    map[kernel.UUID]*item.Item
	orders   map[kernel.UUID]*order.Order
	bills    map[kernel.UUID]*bill.Bill
	platform *platform.Platform

	commits int
}

func newFakeStore(vintage *platform.Platform) *fakeStore {
	return &fakeStore{
		users:    make(map[kernel.UUID]*user.User),
		carriers: make(map[string]*carrier.Carrier),
		items:    make(map[kernel.UUID]*item.Item),
		orders:   make(map[kernel.UUID]*order.Order),
		bills:    make(map[kernel.UUID]*bill.Bill),
		platform: vintage,
	}
}

type fakeUoWFactory struct {
	store *fakeStore
}

func (f fakeUoWFactory) Create() commands.UoW {
	return &fakeUoW{store: f.store}
}

type fakeItemUoWFactory struct {
	store *fakeStore
}

func (f fakeItemUoWFactory) Create() commands.ItemUoW {
	return &fakeUoW{store: f.store}
}

type fakeOrderUoWFactory struct {
	store *fakeStore
}

func (f fakeOrderUoWFactory) Create() commands.OrderUoW {
	return &fakeUoW{store: f.store}
}

type fakeUoW struct {
	store *fakeStore
}

func (f *fakeUoW) Begin(context.Context) error { return nil }

func (f *fakeUoW) Commit(context.Context) error {
	f.store.commits++
	return nil
}

func (f *fakeUoW) Rollback(context.Context) error { return nil }

func (f *fakeUoW) UserRepository() ports.UserRepository {
	return fakeUserRepo{store: f.store}
}

func (f *fakeUoW) CarrierRepository() ports.CarrierRepository {
	return fakeCarrierRepo{store: f.store}
}

func (f *fakeUoW) ItemRepository() ports.ItemRepository {
	return fakeItemRepo{store: f.store}
}

func (f *fakeUoW) OrderRepository() ports.OrderRepository {
	return fakeOrderRepo{store: f.store}
}

func (f *fakeUoW) BillRepository() ports.BillRepository {
	return fakeBillRepo{store: f.store}
}

func (f *fakeUoW) PlatformRepository() ports.PlatformRepository {
	return fakePlatformRepo{store: f.store}
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r fakeUserRepo) Add(_ context.Context, aggregate *user.User) error {
	r.store.users[aggregate.ID()] = aggregate
	return nil
}

func (r fakeUserRepo) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	found, ok := r.store.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return found, nil
}

func (r fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, found := range r.store.users {
		if found.Email() == email {
			return found, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("user", email)
}

type fakeCarrierRepo struct {
	store *fakeStore
}

func (r fakeCarrierRepo) Add(_ context.Context, aggregate *carrier.Carrier) error {
	r.store.carriers[aggregate.Name()] = aggregate
	return nil
}

func (r fakeCarrierRepo) Update(_ context.Context, aggregate *carrier.Carrier) error {
	r.store.carriers[aggregate.Name()] = aggregate
	return nil
}

func (r fakeCarrierRepo) Get(_ context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	for _, found := range r.store.carriers {
		if found.ID().IsEqual(id) {
			return found, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("carrier", id)
}

func (r fakeCarrierRepo) GetByName(_ context.Context, name string) (*carrier.Carrier, error) {
	found, ok := r.store.carriers[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("carrier", name)
	}
	return found, nil
}

func (r fakeCarrierRepo) GetAll(_ context.Context) ([]*carrier.Carrier, error) {
	all := make([]*carrier.Carrier, 0, len(r.store.carriers))
	for _, found := range r.store.carriers {
		all = append(all, found)
	}
	return all, nil
}

type fakeItemRepo struct {
	store *fakeStore
}

func (r fakeItemRepo) Add(_ context.Context, aggregate *item.Item) error {
	r.store.items[aggregate.ID()] = aggregate
	return nil
}

func (r fakeItemRepo) Update(_ context.Context, aggregate *item.Item) error {
	r.store.items[aggregate.ID()] = aggregate
	return nil
}

func (r fakeItemRepo) Get(_ context.Context, id kernel.UUID) (*item.Item, error) {
	found, ok := r.store.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", id)
	}
	return found, nil
}

func (r fakeItemRepo) GetAllListed(_ context.Context) ([]*item.Item, error) {
	var listed []*item.Item
	for _, found := range r.store.items {
		if found.IsListed() {
			listed = append(listed, found)
		}
	}
	return listed, nil
}

type fakeOrderRepo struct {
	store *fakeStore
}

func (r fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

func (r fakeOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

func (r fakeOrderRepo) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.store.orders, id)
	return nil
}

func (r fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	found, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return found, nil
}

func (r fakeOrderRepo) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	return r.byStatus(order.Pending), nil
}

func (r fakeOrderRepo) GetAllInFinishedStatus(_ context.Context) ([]*order.Order, error) {
	return r.byStatus(order.Finished), nil
}

func (r fakeOrderRepo) byStatus(status order.Status) []*order.Order {
	var matched []*order.Order
	for _, found := range r.store.orders {
		if found.Status() == status {
			matched = append(matched, found)
		}
	}
	return matched
}

type fakeBillRepo struct {
	store *fakeStore
}

func (r fakeBillRepo) Add(_ context.Context, aggregate *bill.Bill) error {
	r.store.bills[aggregate.ID()] = aggregate
	return nil
}

func (r fakeBillRepo) Get(_ context.Context, id kernel.UUID) (*bill.Bill, error) {
	found, ok := r.store.bills[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("bill", id)
	}
	return found, nil
}

func (r fakeBillRepo) GetAllByOwner(_ context.Context, ownerID kernel.UUID) ([]*bill.Bill, error) {
	var owned []*bill.Bill
	for _, found := range r.store.bills {
		if found.OwnerID().IsEqual(ownerID) {
			owned = append(owned, found)
		}
	}
	return owned, nil
}

func (r fakeBillRepo) DeleteByOrder(_ context.Context, orderID kernel.UUID) error {
	for id, found := range r.store.bills {
		if found.OrderID().IsEqual(orderID) {
			delete(r.store.bills, id)
		}
	}
	return nil
}

type fakePlatformRepo struct {
	store *fakeStore
}

func (r fakePlatformRepo) Get(_ context.Context) (*platform.Platform, error) {
	return r.store.platform, nil
}

func (r fakePlatformRepo) Update(_ context.Context, aggregate *platform.Platform) error {
	r.store.platform = aggregate
	return nil
}
