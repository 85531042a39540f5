package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// ProductForm is the raw content of the product form. Price is usually the
// recommended price from the calculator, but the seller may type any amount.
type ProductForm struct {
	Name         string
	Category     string
	Description  string
	Price        float64
	Availability string
	Images       []string
}

func (f ProductForm) details() (product.Details, error) {
	price, priceErr := kernel.NewMoney(f.Price)
	availability, availabilityErr := product.ParseAvailability(strings.TrimSpace(f.Availability))
	if err := errors.Join(priceErr, availabilityErr); err != nil {
		return product.Details{}, err
	}

	return product.Details{
		Name:         f.Name,
		Category:     f.Category,
		Description:  f.Description,
		Price:        price,
		Availability: availability,
		Images:       f.Images,
	}, nil
}

// CreateProductCommand lists a new product.
type CreateProductCommand struct {
	details product.Details
	guard   guard.ConstructorGuard
}

func NewCreateProductCommand(form ProductForm) (CreateProductCommand, error) {
	details, err := form.details()
	if err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Details() product.Details {
	return c.details
}

// UpdateProductCommand replaces every editable attribute of a product.
type UpdateProductCommand struct {
	productID kernel.UUID
	details   product.Details
	guard     guard.ConstructorGuard
}

func NewUpdateProductCommand(productID string, form ProductForm) (UpdateProductCommand, error) {
	id, idErr := kernel.UUIDFromString(productID)
	details, detailsErr := form.details()
	if err := errors.Join(idErr, detailsErr); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{productID: id, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) Details() product.Details {
	return c.details
}

// DeleteProductCommand removes a product for good. Orders for it keep the
// product name they were placed with.
type DeleteProductCommand struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewDeleteProductCommand(productID string) (DeleteProductCommand, error) {
	id, err := kernel.UUIDFromString(productID)
	if err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}
