package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted, so there is no Delete.
type OrderRepository interface {
	// Add persists a newly received order. Fails with errs.ErrObjectAlreadyExists
	// when the id is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order. Its position in
	// GetAll does not change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads one order, failing with errs.ErrObjectNotFound. Inside a unit
	// of work the order stays locked until commit or rollback.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll returns every order in the order they were received.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
