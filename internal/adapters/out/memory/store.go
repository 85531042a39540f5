// Package memory keeps the storefront in process memory. It is the default
// storage backend and the one used by the HTTP tests.
//
// Units of work are serialised: Begin waits until no other unit of work is
// active, changes are staged and only become visible on Commit. Readers never
// wait for a unit of work, they see the last committed state.
package memory

import (
	"context"
	"sync"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/seller"
	"storefront/internal/core/ports"

	"golang.org/x/sync/semaphore"
)

// Store holds the committed state.
type Store struct {
	writer *semaphore.Weighted

	mu           sync.RWMutex
	orders       []*order.Order
	orderIndex   map[string]int
	products     []*product.Product
	productIndex map[kernel.UUID]int
	profile      *seller.Profile
}

func NewStore() *Store {
	return &Store{
		writer:       semaphore.NewWeighted(1),
		orderIndex:   make(map[string]int),
		productIndex: make(map[kernel.UUID]int),
	}
}

var _ ports.Readers = (*Store)(nil)

// Orders returns a repository that reads committed orders and writes through
// immediately.
func (s *Store) Orders() ports.OrderRepository {
	return &orderRepository{store: s}
}

func (s *Store) Products() ports.ProductRepository {
	return &productRepository{store: s}
}

func (s *Store) Profiles() ports.SellerProfileRepository {
	return &profileRepository{store: s}
}

// read runs fn against a view with nothing staged.
func (s *Store) read(fn func(*changeSet) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(newChangeSet(s))
}

// write runs fn as a single statement transaction.
func (s *Store) write(fn func(*changeSet) error) error {
	_ = s.writer.Acquire(context.Background(), 1)
	defer s.writer.Release(1)

	cs := newChangeSet(s)
	if err := fn(cs); err != nil {
		return err
	}
	s.apply(cs)
	return nil
}

// apply publishes staged changes. Callers hold the writer semaphore.
func (s *Store) apply(cs *changeSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, o := range cs.orders {
		if idx, ok := s.orderIndex[id]; ok {
			s.orders[idx] = o
		}
	}
	for _, id := range cs.newOrders {
		s.orderIndex[id] = len(s.orders)
		s.orders = append(s.orders, cs.orders[id])
	}

	if len(cs.products) > 0 || len(cs.deletedProducts) > 0 {
		products := make([]*product.Product, 0, len(s.products)+len(cs.newProducts))
		for _, p := range s.products {
			if _, gone := cs.deletedProducts[p.ID()]; gone {
				continue
			}
			if staged, ok := cs.products[p.ID()]; ok {
				p = staged
			}
			products = append(products, p)
		}
		for _, id := range cs.newProducts {
			if _, gone := cs.deletedProducts[id]; gone {
				continue
			}
			products = append(products, cs.products[id])
		}

		s.products = products
		s.productIndex = make(map[kernel.UUID]int, len(products))
		for i, p := range products {
			s.productIndex[p.ID()] = i
		}
	}

	if cs.profile != nil {
		s.profile = cs.profile
	}
}
