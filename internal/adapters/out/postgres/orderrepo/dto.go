// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Seq records arrival so listings keep
// insertion order.
type OrderDTO struct {
	ID          string          `gorm:"primaryKey;size:64"`
	Seq         int64           `gorm:"autoIncrement;not null;uniqueIndex"`
	Customer    CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	ProductName string          `gorm:"size:255;not null"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      int             `gorm:"not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	Notes       string          `gorm:"type:text"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255;not null"`
	Address string `gorm:"type:text;not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	var productID *uuid.UUID
	if id := o.Product().ID(); id != nil {
		raw := id.Bytes()
		productID = &raw
	}

	customer := o.Customer()
	return OrderDTO{
		ID: o.ID(),
		Customer: CustomerDTO{
			Name:    customer.Name(),
			Email:   customer.Email(),
			Address: customer.Address(),
		},
		ProductName: o.Product().Name(),
		ProductID:   productID,
		Amount:      o.Amount().Decimal(),
		Status:      int(o.Status()),
		Date:        o.Date(),
		Notes:       o.Notes(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Email, dto.Customer.Address)
	if err != nil {
		return nil, err
	}

	var productID *kernel.UUID
	if dto.ProductID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if idErr != nil {
			return nil, idErr
		}
		productID = &id
	}
	product, err := order.NewProductRef(dto.ProductName, productID)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.MoneyFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, customer, product, amount, order.Status(dto.Status), dto.Date, dto.Notes)
}
