package memory

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/seller"
)

// session is either an open unit of work or the store in autocommit mode.
type session interface {
	read(fn func(*changeSet) error) error
	write(fn func(*changeSet) error) error
}

type orderRepository struct {
	store *Store
	uow   *UnitOfWork
}

func (r *orderRepository) session() session {
	if r.uow != nil && r.uow.active {
		return r.uow
	}
	return r.store
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.session().write(func(cs *changeSet) error {
		return cs.addOrder(aggregate)
	})
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.session().write(func(cs *changeSet) error {
		return cs.updateOrder(aggregate)
	})
}

func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *order.Order
	err := r.session().read(func(cs *changeSet) error {
		var err error
		found, err = cs.getOrder(id)
		return err
	})
	return found, err
}

func (r *orderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var all []*order.Order
	err := r.session().read(func(cs *changeSet) error {
		var err error
		all, err = cs.allOrders()
		return err
	})
	return all, err
}

type productRepository struct {
	store *Store
	uow   *UnitOfWork
}

func (r *productRepository) session() session {
	if r.uow != nil && r.uow.active {
		return r.uow
	}
	return r.store
}

func (r *productRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.session().write(func(cs *changeSet) error {
		return cs.addProduct(aggregate)
	})
}

func (r *productRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.session().write(func(cs *changeSet) error {
		return cs.updateProduct(aggregate)
	})
}

func (r *productRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.session().write(func(cs *changeSet) error {
		return cs.deleteProduct(id)
	})
}

func (r *productRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *product.Product
	err := r.session().read(func(cs *changeSet) error {
		var err error
		found, err = cs.getProduct(id)
		return err
	})
	return found, err
}

func (r *productRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var all []*product.Product
	err := r.session().read(func(cs *changeSet) error {
		var err error
		all, err = cs.allProducts()
		return err
	})
	return all, err
}

type profileRepository struct {
	store *Store
	uow   *UnitOfWork
}

func (r *profileRepository) session() session {
	if r.uow != nil && r.uow.active {
		return r.uow
	}
	return r.store
}

func (r *profileRepository) Get(ctx context.Context) (*seller.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *seller.Profile
	err := r.session().read(func(cs *changeSet) error {
		var err error
		found, err = cs.getProfile()
		return err
	})
	return found, err
}

func (r *profileRepository) Save(ctx context.Context, profile *seller.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	return r.session().write(func(cs *changeSet) error {
		return cs.saveProfile(profile)
	})
}
