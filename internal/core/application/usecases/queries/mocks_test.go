package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/seller"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(_ context.Context, _ *product.Product) error { return nil }
func (m *MockProductRepository) Update(_ context.Context, _ *product.Product) error { return nil }
func (m *MockProductRepository) Delete(_ context.Context, _ kernel.UUID) error { return nil }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Get(ctx context.Context) (*seller.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(_ context.Context, _ *seller.Profile) error { return nil }

func testOrder(t *testing.T, id string, status order.Status, amount float64, day int) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Customer", "customer@example.com", "1 Craft Lane")
	require.NoError(t, err)
	ref, err := order.NewProductRef("Ceramic Vase", nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, customer, ref, kernel.MustNewMoney(amount), status,
		time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	return o
}

func testProduct(t *testing.T, name string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(product.Details{
		Name:         name,
		Category:     "Pottery",
		Price:        kernel.MustNewMoney(120),
		Availability: product.Available,
	})
	require.NoError(t, err)
	return p
}
