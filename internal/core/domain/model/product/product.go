package product

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using a zero value Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrNameIsRequired is returned for an empty product name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned for an empty category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// Details groups the seller editable attributes of a product. It is used both
// to create a product and to replace the attributes of an existing one.
type Details struct {
	Name         string
	Category     string
	Description  string
	Price        kernel.Money
	Availability Availability
	// Images holds references produced by the upload collaborator, in display order.
	Images []string
}

// Product is a catalog entry listed by the seller.
//
// Business rules:
//   - id is generated on creation and never changes
//   - name and category are required, description is free text
//   - price is non-negative and in the store's single currency
//   - availability is one of available, out-of-stock, made-to-order
//
// A product is only changed by an explicit Edit and removal is permanent.
// Orders keep their own copy of the product name, so deleting a product never
// touches order history.
//
// Example:
//
//	p, err := product.NewProduct(product.Details{
//	    Name:         "Handwoven Basket",
//	    Category:     "Home Decor",
//	    Price:        kernel.MustNewMoney(85),
//	    Availability: product.Available,
//	})
type Product struct {
	id           kernel.UUID
	name         string
	category     string
	description  string
	price        kernel.Money
	availability Availability
	images       []string

	guard guard.ConstructorGuard
}

// NewProduct creates a product with a freshly generated id.
func NewProduct(details Details) (*Product, error) {
	return RestoreProduct(kernel.NewUUID(), details)
}

// RestoreProduct rebuilds a product with a known id, as loaded by repositories.
func RestoreProduct(id kernel.UUID, details Details) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.apply(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Availability() Availability {
	return p.availability
}

// Images returns a copy of the image references.
func (p *Product) Images() []string {
	out := make([]string, len(p.images))
	copy(out, p.images)
	return out
}

// Details returns the editable attributes, handy for partial edits.
func (p *Product) Details() Details {
	return Details{
		Name:         p.name,
		Category:     p.category,
		Description:  p.description,
		Price:        p.price,
		Availability: p.availability,
		Images:       p.Images(),
	}
}

// Edit replaces all editable attributes. The product is left unchanged when
// any of the new values is invalid.
func (p *Product) Edit(details Details) error {
	candidate := &Product{id: p.id, guard: p.guard}
	if err := candidate.apply(details); err != nil {
		return err
	}
	*p = *candidate
	return nil
}

func (p *Product) apply(details Details) error {
	name := strings.TrimSpace(details.Name)
	category := strings.TrimSpace(details.Category)

	var nameErr, categoryErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if category == "" {
		categoryErr = ErrCategoryIsRequired
	}

	if err := errors.Join(nameErr, categoryErr, details.Availability.Validate()); err != nil {
		return err
	}

	p.name = name
	p.category = category
	p.description = strings.TrimSpace(details.Description)
	p.price = details.Price
	p.availability = details.Availability
	p.images = compactImages(details.Images)
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func compactImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, ref := range images {
		if ref = strings.TrimSpace(ref); ref != "" {
			out = append(out, ref)
		}
	}
	return out
}
