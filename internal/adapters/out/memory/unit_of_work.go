package memory

import (
	"context"
	"errors"

	"storefront/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned by Commit without a matching Begin.
var ErrNoActiveUnitOfWork = errors.New("unit of work is not active")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes in a changeSet and publishes them on Commit.
// Only one unit of work per store is active at a time. A unit of work is not
// safe for concurrent use.
type UnitOfWork struct {
	store   *Store
	changes *changeSet
	active  bool
}

// Begin waits for the store to be free or for ctx to end.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := u.store.writer.Acquire(ctx, 1); err != nil {
		return err
	}
	u.changes = newChangeSet(u.store)
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveUnitOfWork
	}
	u.store.apply(u.changes)
	u.release()
	return nil
}

// Rollback discards staged changes. It is a no-op when nothing is active.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.release()
	return nil
}

func (u *UnitOfWork) release() {
	u.changes = nil
	u.active = false
	u.store.writer.Release(1)
}

func (u *UnitOfWork) read(fn func(*changeSet) error) error {
	return fn(u.changes)
}

func (u *UnitOfWork) write(fn func(*changeSet) error) error {
	return fn(u.changes)
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{store: u.store, uow: u}
}

func (u *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{store: u.store, uow: u}
}

func (u *UnitOfWork) SellerProfileRepository() ports.SellerProfileRepository {
	return &profileRepository{store: u.store, uow: u}
}
