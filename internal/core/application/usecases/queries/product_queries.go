package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
)

// GetProductsQueryHandler lists the catalog in creation order.
type GetProductsQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductsQueryHandler(products ports.ProductRepository) GetProductsQueryHandler {
	return GetProductsQueryHandler{products: products}
}

func (h GetProductsQueryHandler) Handle(ctx context.Context) ([]*product.Product, error) {
	return h.products.GetAll(ctx)
}

// GetProductQueryHandler loads one product, failing with errs.ErrObjectNotFound.
type GetProductQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, productID string) (*product.Product, error) {
	id, err := kernel.UUIDFromString(productID)
	if err != nil {
		return nil, err
	}
	return h.products.Get(ctx, id)
}
