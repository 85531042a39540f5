package order

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer purchase of exactly one product. It is the aggregate root
// of the fulfillment lifecycle.
//
// Invariants:
//   - id is non-empty and never changes
//   - status is always one of Pending, InProgress, Shipped, Completed
//   - amount is non-negative (kernel.Money)
//   - date has day granularity (midnight UTC)
//
// Orders are created by the purchase flow outside the storefront and then only
// change through ChangeStatus. They are never deleted.
type Order struct {
	id       string
	customer Customer
	product  ProductRef
	amount   kernel.Money
	status   Status
	date     time.Time
	notes    string

	isConstructed bool
}

// NewOrder registers a freshly placed order in Pending status.
//
// Example:
//
//	customer, _ := order.NewCustomer("Sarah Johnson", "sarah@example.com", "123 Main St, Portland, OR")
//	product, _ := order.NewProductRef("Handwoven Basket", nil)
//	o, err := order.NewOrder("ORD-001", customer, product, kernel.MustNewMoney(85), time.Now(), "")
func NewOrder(
	id string,
	customer Customer,
	product ProductRef,
	amount kernel.Money,
	date time.Time,
	notes string,
) (*Order, error) {
	return RestoreOrder(id, customer, product, amount, Pending, date, notes)
}

// RestoreOrder rebuilds an order in any valid status, as read back from storage
// or received from the purchase flow with a status already set.
func RestoreOrder(
	id string,
	customer Customer,
	product ProductRef,
	amount kernel.Money,
	status Status,
	date time.Time,
	notes string,
) (*Order, error) {
	order := &Order{
		amount:        amount,
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setProduct(product),
		order.setStatus(status),
		order.setDate(date),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Product() ProductRef {
	return o.product
}

func (o *Order) Amount() kernel.Money {
	return o.amount
}

func (o *Order) Status() Status {
	return o.status
}

// Date returns the day the order was placed (midnight UTC).
func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) Notes() string {
	return o.notes
}

// ChangeStatus replaces the order status in place. Any valid status may follow
// any other, including moving backwards; an invalid target leaves the order
// untouched.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setProduct(product ProductRef) error {
	if err := product.Validate(); err != nil {
		return err
	}
	o.product = product
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.date = TruncateToDay(date)
	return nil
}

// TruncateToDay drops the time of day, keeping the calendar date as seen in
// the timestamp's own location.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
