package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAvailability(t *testing.T) {
	for _, a := range product.Availabilities() {
		parsed, err := product.ParseAvailability(a.String())

		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := product.ParseAvailability("sold")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAvailability_Validate(t *testing.T) {
	assert.NoError(t, product.MadeToOrder.Validate())
	assert.ErrorIs(t, product.AvailabilityUnknown.Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", product.Availability(9).String())
	assert.Equal(t, "out-of-stock", product.OutOfStock.String())
}
