// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and, once committed, a best effort notice to the seller.
package commands

import (
	"context"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/logger"

	"go.uber.org/zap"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ProfileRepoFactory provides access to the seller profile within a transaction.
	ProfileRepoFactory interface {
		SellerProfileRepository() ports.SellerProfileRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// ProfileUoW manages transactions for profile operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}
)

// notify hands a notice to the notifier. A failed delivery never fails the
// command that already committed.
func notify(ctx context.Context, notifier ports.Notifier, notice notices.Notice) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, notice); err != nil {
		logger.FromContext(ctx).Warn("notice delivery failed",
			zap.String("kind", string(notice.Kind)),
			zap.String("subject", notice.Subject),
			zap.Error(err),
		)
	}
}
