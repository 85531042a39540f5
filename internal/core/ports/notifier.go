package ports

import (
	"context"

	"storefront/internal/core/application/notices"
)

// Notifier hands confirmations to whatever shows them to the seller.
// Delivery is best effort: callers log a failure and carry on.
type Notifier interface {
	Notify(ctx context.Context, notice notices.Notice) error
}
