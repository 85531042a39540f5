package queries

import (
	"context"

	"storefront/internal/core/domain/model/seller"
	"storefront/internal/core/ports"
)

type GetSellerProfileQueryHandler struct {
	profiles ports.SellerProfileRepository
}

func NewGetSellerProfileQueryHandler(profiles ports.SellerProfileRepository) GetSellerProfileQueryHandler {
	return GetSellerProfileQueryHandler{profiles: profiles}
}

// Handle fails with errs.ErrObjectNotFound before the first save.
func (h GetSellerProfileQueryHandler) Handle(ctx context.Context) (*seller.Profile, error) {
	return h.profiles.Get(ctx)
}
