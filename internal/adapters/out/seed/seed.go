// Package seed loads the initial catalog, order book and seller profile from
// a YAML file into any storage backend.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/seller"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

type File struct {
	Profile  *Profile  `yaml:"profile"`
	Products []Product `yaml:"products"`
	Orders   []Order   `yaml:"orders"`
}

type Profile struct {
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Region      string `yaml:"region"`
	CraftType   string `yaml:"craftType"`
	Skill       string `yaml:"skill"`
	Description string `yaml:"description"`
}

type Product struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Price        float64  `yaml:"price"`
	Availability string   `yaml:"availability"`
	Images       []string `yaml:"images"`
}

type Order struct {
	ID            string  `yaml:"id"`
	CustomerName  string  `yaml:"customerName"`
	CustomerEmail string  `yaml:"customerEmail"`
	Address       string  `yaml:"address"`
	ProductName   string  `yaml:"product"`
	ProductID     string  `yaml:"productId"`
	Amount        float64 `yaml:"amount"`
	Status        string  `yaml:"status"`
	Date          string  `yaml:"date"`
	Notes         string  `yaml:"notes"`
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	return &f, nil
}

// Apply writes the seed in a single unit of work. Products first, so that
// orders can refer to them by name when no product id is given.
func (f *File) Apply(ctx context.Context, uow ports.UnitOfWork) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	byName := make(map[string]kernel.UUID, len(f.Products))
	for i, p := range f.Products {
		aggregate, err := p.toDomain()
		if err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
		if err := uow.ProductRepository().Add(ctx, aggregate); err != nil {
			return err
		}
		byName[aggregate.Name()] = aggregate.ID()
	}

	for i, o := range f.Orders {
		aggregate, err := o.toDomain(byName)
		if err != nil {
			return fmt.Errorf("order %d: %w", i, err)
		}
		if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
			return err
		}
	}

	if f.Profile != nil {
		profile, err := seller.NewProfile(seller.Fields(*f.Profile))
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		if err := uow.SellerProfileRepository().Save(ctx, profile); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (p Product) toDomain() (*product.Product, error) {
	price, err := kernel.NewMoney(p.Price)
	if err != nil {
		return nil, err
	}
	availability, err := product.ParseAvailability(p.Availability)
	if err != nil {
		return nil, err
	}
	details := product.Details{
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Price:        price,
		Availability: availability,
		Images:       p.Images,
	}
	if p.ID == "" {
		return product.NewProduct(details)
	}
	id, err := kernel.UUIDFromString(p.ID)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, details)
}

func (o Order) toDomain(products map[string]kernel.UUID) (*order.Order, error) {
	customer, err := order.NewCustomer(o.CustomerName, o.CustomerEmail, o.Address)
	if err != nil {
		return nil, err
	}

	var productID *kernel.UUID
	if o.ProductID != "" {
		id, err := kernel.UUIDFromString(o.ProductID)
		if err != nil {
			return nil, err
		}
		productID = &id
	} else if id, ok := products[o.ProductName]; ok {
		productID = &id
	}
	ref, err := order.NewProductRef(o.ProductName, productID)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(o.Amount)
	if err != nil {
		return nil, err
	}

	status := order.Pending
	if o.Status != "" {
		if status, err = order.ParseStatus(o.Status); err != nil {
			return nil, err
		}
	}

	date, err := time.Parse(dateLayout, o.Date)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order date", err)
	}

	return order.RestoreOrder(o.ID, customer, ref, amount, status, date, o.Notes)
}
