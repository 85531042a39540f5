package ports

import (
	"context"

	"storefront/internal/core/domain/model/seller"
)

// SellerProfileRepository stores the single profile of the store owner.
type SellerProfileRepository interface {
	// Get fails with errs.ErrObjectNotFound until a profile has been saved.
	Get(ctx context.Context) (*seller.Profile, error)
	// Save creates or replaces the profile.
	Save(ctx context.Context, profile *seller.Profile) error
}
