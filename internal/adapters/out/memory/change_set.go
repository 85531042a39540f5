package memory

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/seller"
	"storefront/internal/pkg/errs"
)

// changeSet stages the writes of one unit of work on top of the committed
// state. Every aggregate crossing its boundary is cloned, so callers can
// mutate what they get without touching the store.
type changeSet struct {
	store *Store

	orders    map[string]*order.Order
	newOrders []string

	products        map[kernel.UUID]*product.Product
	newProducts     []kernel.UUID
	deletedProducts map[kernel.UUID]struct{}

	profile *seller.Profile
}

func newChangeSet(store *Store) *changeSet {
	return &changeSet{
		store:           store,
		orders:          make(map[string]*order.Order),
		products:        make(map[kernel.UUID]*product.Product),
		deletedProducts: make(map[kernel.UUID]struct{}),
	}
}

func (cs *changeSet) lookupOrder(id string) (*order.Order, bool) {
	if o, ok := cs.orders[id]; ok {
		return o, true
	}
	if idx, ok := cs.store.orderIndex[id]; ok {
		return cs.store.orders[idx], true
	}
	return nil, false
}

func (cs *changeSet) getOrder(id string) (*order.Order, error) {
	o, ok := cs.lookupOrder(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return cloneOrder(o)
}

func (cs *changeSet) addOrder(o *order.Order) error {
	if _, exists := cs.lookupOrder(o.ID()); exists {
		return errs.NewObjectAlreadyExistsError("order", o.ID())
	}
	c, err := cloneOrder(o)
	if err != nil {
		return err
	}
	cs.orders[o.ID()] = c
	cs.newOrders = append(cs.newOrders, o.ID())
	return nil
}

func (cs *changeSet) updateOrder(o *order.Order) error {
	if _, exists := cs.lookupOrder(o.ID()); !exists {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	c, err := cloneOrder(o)
	if err != nil {
		return err
	}
	cs.orders[o.ID()] = c
	return nil
}

// allOrders lists committed orders, then new ones, each in insertion order.
func (cs *changeSet) allOrders() ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(cs.store.orders)+len(cs.newOrders))
	for _, o := range cs.store.orders {
		if staged, ok := cs.orders[o.ID()]; ok {
			o = staged
		}
		c, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	for _, id := range cs.newOrders {
		c, err := cloneOrder(cs.orders[id])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (cs *changeSet) lookupProduct(id kernel.UUID) (*product.Product, bool) {
	if _, gone := cs.deletedProducts[id]; gone {
		return nil, false
	}
	if p, ok := cs.products[id]; ok {
		return p, true
	}
	if idx, ok := cs.store.productIndex[id]; ok {
		return cs.store.products[idx], true
	}
	return nil, false
}

func (cs *changeSet) getProduct(id kernel.UUID) (*product.Product, error) {
	p, ok := cs.lookupProduct(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	return cloneProduct(p)
}

func (cs *changeSet) addProduct(p *product.Product) error {
	if _, exists := cs.lookupProduct(p.ID()); exists {
		return errs.NewObjectAlreadyExistsError("product", p.ID().String())
	}
	c, err := cloneProduct(p)
	if err != nil {
		return err
	}
	cs.products[p.ID()] = c
	cs.newProducts = append(cs.newProducts, p.ID())
	return nil
}

func (cs *changeSet) updateProduct(p *product.Product) error {
	if _, exists := cs.lookupProduct(p.ID()); !exists {
		return errs.NewObjectNotFoundError("product", p.ID().String())
	}
	c, err := cloneProduct(p)
	if err != nil {
		return err
	}
	cs.products[p.ID()] = c
	return nil
}

func (cs *changeSet) deleteProduct(id kernel.UUID) error {
	if _, exists := cs.lookupProduct(id); !exists {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	cs.deletedProducts[id] = struct{}{}
	return nil
}

func (cs *changeSet) allProducts() ([]*product.Product, error) {
	out := make([]*product.Product, 0, len(cs.store.products)+len(cs.newProducts))
	appendClone := func(p *product.Product) error {
		c, err := cloneProduct(p)
		if err != nil {
			return err
		}
		out = append(out, c)
		return nil
	}

	for _, p := range cs.store.products {
		if _, gone := cs.deletedProducts[p.ID()]; gone {
			continue
		}
		if staged, ok := cs.products[p.ID()]; ok {
			p = staged
		}
		if err := appendClone(p); err != nil {
			return nil, err
		}
	}
	for _, id := range cs.newProducts {
		if _, gone := cs.deletedProducts[id]; gone {
			continue
		}
		if err := appendClone(cs.products[id]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (cs *changeSet) getProfile() (*seller.Profile, error) {
	p := cs.profile
	if p == nil {
		p = cs.store.profile
	}
	if p == nil {
		return nil, errs.NewObjectNotFoundError("seller profile", "default")
	}
	return seller.NewProfile(p.Fields())
}

func (cs *changeSet) saveProfile(p *seller.Profile) error {
	c, err := seller.NewProfile(p.Fields())
	if err != nil {
		return err
	}
	cs.profile = c
	return nil
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.Customer(), o.Product(), o.Amount(), o.Status(), o.Date(), o.Notes())
}

func cloneProduct(p *product.Product) (*product.Product, error) {
	return product.RestoreProduct(p.ID(), p.Details())
}
