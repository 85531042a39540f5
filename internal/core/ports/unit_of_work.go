// Package ports defines the contracts between the storefront core and its
// adapters: repositories, units of work and the notifier.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every change made through the bound repositories visible.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the changes. Calling it after Commit is a no-op, so
	// handlers can always defer it.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// SellerProfileRepository returns a SellerProfileRepository bound to the current transaction.
	SellerProfileRepository() SellerProfileRepository
}

// Readers give queries access to committed state without opening a unit of work.
type Readers interface {
	Orders() OrderRepository
	Products() ProductRepository
	Profiles() SellerProfileRepository
}
