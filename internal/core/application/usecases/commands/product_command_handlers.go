package commands

import (
	"context"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
)

// ProductResult is the stored product plus the confirmation for the seller.
type ProductResult struct {
	Product *product.Product
	Notice  notices.Notice
}

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	notifier   ports.Notifier
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, notifier ports.Notifier) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (ProductResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProductResult{}, err
	}

	p, err := product.NewProduct(cmd.Details())
	if err != nil {
		return ProductResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ProductResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return ProductResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProductResult{}, err
	}

	notice := notices.ProductAdded(p.ID().String(), p.Name())
	notify(ctx, h.notifier, notice)

	return ProductResult{Product: p, Notice: notice}, nil
}

type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	notifier   ports.Notifier
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory, notifier ports.Notifier) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle fails with errs.ErrObjectNotFound for an unknown product.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (ProductResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProductResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProductResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return ProductResult{}, err
	}

	if err = p.Edit(cmd.Details()); err != nil {
		return ProductResult{}, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return ProductResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProductResult{}, err
	}

	notice := notices.ProductUpdated(p.ID().String(), p.Name())
	notify(ctx, h.notifier, notice)

	return ProductResult{Product: p, Notice: notice}, nil
}

type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	notifier   ports.Notifier
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory, notifier ports.Notifier) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle fails with errs.ErrObjectNotFound for an unknown product.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (notices.Notice, error) {
	if err := cmd.Validate(); err != nil {
		return notices.Notice{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return notices.Notice{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return notices.Notice{}, err
	}

	if err = repo.Delete(ctx, p.ID()); err != nil {
		return notices.Notice{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return notices.Notice{}, err
	}

	notice := notices.ProductDeleted(p.ID().String(), p.Name())
	notify(ctx, h.notifier, notice)

	return notice, nil
}
