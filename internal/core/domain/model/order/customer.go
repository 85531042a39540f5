package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the buyer of an order. Name, email and shipping address are
// opaque strings; only their presence is checked.
type Customer struct {
	name    string
	email   string
	address string

	guard guard.ConstructorGuard
}

func NewCustomer(name, email, address string) (Customer, error) {
	c := Customer{
		name:    strings.TrimSpace(name),
		email:   strings.TrimSpace(email),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("customer name", c.name),
		required("customer email", c.email),
		required("shipping address", c.address),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

func (c Customer) Address() string {
	return c.address
}

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
