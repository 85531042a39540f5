package commands

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrReceiveOrderCommandIsNotConstructed = errors.New(
	"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
)

// OrderIntake is an order as handed over by the purchase flow.
type OrderIntake struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	Address       string
	ProductName   string
	// ProductID is the catalog id, empty when the product is not in the catalog.
	ProductID string
	Amount    float64
	// Status defaults to pending when empty.
	Status string
	// Date defaults to today when zero.
	Date  time.Time
	Notes string
}

// ReceiveOrderCommand registers an order placed outside the storefront.
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	customer order.Customer
	product  order.ProductRef
	amount   kernel.Money
	status   order.Status
	date     time.Time
	notes    string

	guard guard.ConstructorGuard
}

func NewReceiveOrderCommand(in OrderIntake) (ReceiveOrderCommand, error) {
	cmd := ReceiveOrderCommand{
		notes: strings.TrimSpace(in.Notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(in.OrderID),
		cmd.setCustomer(in.CustomerName, in.CustomerEmail, in.Address),
		cmd.setProduct(in.ProductName, in.ProductID),
		cmd.setAmount(in.Amount),
		cmd.setStatus(in.Status),
		cmd.setDate(in.Date),
	); err != nil {
		return ReceiveOrderCommand{}, err
	}

	return cmd, nil
}

func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

func (c ReceiveOrderCommand) OrderID() string { return c.orderID }
func (c ReceiveOrderCommand) Customer() order.Customer { return c.customer }
func (c ReceiveOrderCommand) Product() order.ProductRef { return c.product }
func (c ReceiveOrderCommand) Amount() kernel.Money { return c.amount }
func (c ReceiveOrderCommand) Status() order.Status { return c.status }
func (c ReceiveOrderCommand) Date() time.Time { return c.date }
func (c ReceiveOrderCommand) Notes() string { return c.notes }

func (c *ReceiveOrderCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}

func (c *ReceiveOrderCommand) setCustomer(name, email, address string) error {
	customer, err := order.NewCustomer(name, email, address)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *ReceiveOrderCommand) setProduct(name, id string) error {
	var productID *kernel.UUID
	if id = strings.TrimSpace(id); id != "" {
		parsed, err := kernel.UUIDFromString(id)
		if err != nil {
			return err
		}
		productID = &parsed
	}

	ref, err := order.NewProductRef(name, productID)
	if err != nil {
		return err
	}
	c.product = ref
	return nil
}

func (c *ReceiveOrderCommand) setAmount(amount float64) error {
	money, err := kernel.NewMoney(amount)
	if err != nil {
		return err
	}
	c.amount = money
	return nil
}

func (c *ReceiveOrderCommand) setStatus(code string) error {
	if code == "" {
		c.status = order.Pending
		return nil
	}
	status, err := order.ParseStatus(code)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ReceiveOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		date = time.Now()
	}
	c.date = order.TruncateToDay(date)
	return nil
}
