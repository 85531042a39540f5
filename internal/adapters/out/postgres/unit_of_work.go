// Package postgres provides the GORM-backed storage of the storefront.
//
// A GormUnitOfWork wraps one database transaction. Repositories obtained from
// it after Begin run inside that transaction, and the order repository locks
// the rows it reads, so a status change is an atomic read-modify-write even
// with several service instances on one database.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, "ORD-001")
//	...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit does nothing, which keeps the deferred
// call above safe.
package postgres

import (
	"context"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/profilerepo"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	Key       string
	Aggregate any
}

// Migrate creates or updates the storefront tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &productrepo.ProductDTO{}, &profilerepo.ProfileDTO{})
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and remembers the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when Begin was not called.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() (*gorm.DB, bool) {
	if uow.tx != nil {
		return uow.tx, true
	}
	return uow.db, false
}

// OrderRepository runs in the current transaction if one is active, otherwise
// statements go straight to the database.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db, inTx := uow.conn()
	return orderrepo.NewGormOrderRepository(db, uow, inTx)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	db, _ := uow.conn()
	return productrepo.NewGormProductRepository(db, uow)
}

func (uow *GormUnitOfWork) SellerProfileRepository() ports.SellerProfileRepository {
	db, _ := uow.conn()
	return profilerepo.NewGormProfileRepository(db)
}

// TrackAggregate is called by the repositories after each successful write.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// TrackedKeys lists the keys of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedKeys() []string {
	keys := make([]string, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		keys = append(keys, t.Key)
	}
	return keys
}

// Readers serve queries from committed state.
type Readers struct {
	db *gorm.DB
}

var _ ports.Readers = (*Readers)(nil)

func NewReaders(db *gorm.DB) *Readers {
	return &Readers{db: db}
}

func (r *Readers) Orders() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(r.db, nil, false)
}

func (r *Readers) Products() ports.ProductRepository {
	return productrepo.NewGormProductRepository(r.db, nil)
}

func (r *Readers) Profiles() ports.SellerProfileRepository {
	return profilerepo.NewGormProfileRepository(r.db)
}
