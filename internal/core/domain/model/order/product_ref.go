package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrProductRefIsNotConstructed = errors.New("ProductRef must be created via NewProductRef constructor")

// ProductRef points at the single product an order was placed for. Orders may
// outlive catalog entries, so the product name is always kept and the
// catalog id is optional.
type ProductRef struct {
	name string
	id   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewProductRef(name string, id *kernel.UUID) (ProductRef, error) {
	ref := ProductRef{
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}

	if err := required("product name", ref.name); err != nil {
		return ProductRef{}, err
	}

	if id != nil {
		if err := id.Validate(); err != nil {
			return ProductRef{}, err
		}
		productID := *id
		ref.id = &productID
	}

	return ref, nil
}

func (r ProductRef) Validate() error {
	return r.guard.Validate(ErrProductRefIsNotConstructed)
}

func (r ProductRef) Name() string {
	return r.name
}

// ID returns the catalog id, or nil when the order only carries a name.
func (r ProductRef) ID() *kernel.UUID {
	return r.id
}
