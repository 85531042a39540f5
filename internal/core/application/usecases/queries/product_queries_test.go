package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/seller"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) []*product.Product {
	return []*product.Product{testProduct(t, "Ceramic Vase"), testProduct(t, "Leather Journal")}
}

func TestGetProductsQueryHandler(t *testing.T) {
	catalog := testCatalog(t)
	repo := new(MockProductRepository)
	repo.On("GetAll", mock.Anything).Return(catalog, nil).Once()

	products, err := queries.NewGetProductsQueryHandler(repo).Handle(t.Context())

	require.NoError(t, err)
	assert.Equal(t, catalog, products)
	repo.AssertExpectations(t)
}

func TestGetProductQueryHandler(t *testing.T) {
	p := testProduct(t, "Ceramic Vase")

	t.Run("should load by id", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once()

		got, err := queries.NewGetProductQueryHandler(repo).Handle(t.Context(), p.ID().String())

		require.NoError(t, err)
		assert.Same(t, p, got)
	})

	t.Run("should reject malformed id without touching storage", func(t *testing.T) {
		repo := new(MockProductRepository)

		_, err := queries.NewGetProductQueryHandler(repo).Handle(t.Context(), "basket")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestGetSellerProfileQueryHandler(t *testing.T) {
	t.Run("should return saved profile", func(t *testing.T) {
		profile, err := seller.NewProfile(seller.Fields{Name: "Maria", Email: "maria@example.com"})
		require.NoError(t, err)
		repo := new(MockProfileRepository)
		repo.On("Get", mock.Anything).Return(profile, nil).Once()

		got, err := queries.NewGetSellerProfileQueryHandler(repo).Handle(t.Context())

		require.NoError(t, err)
		assert.Equal(t, "Maria", got.Name())
	})

	t.Run("should report missing profile", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("Get", mock.Anything).Return(nil, errs.NewObjectNotFoundError("seller profile", "default")).Once()

		_, err := queries.NewGetSellerProfileQueryHandler(repo).Handle(t.Context())

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
