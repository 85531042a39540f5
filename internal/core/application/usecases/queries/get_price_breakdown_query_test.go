package queries_test

import (
	"math"
	"strings"
	"testing"

	"storefront/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPriceBreakdownQueryHandler(t *testing.T) {
	h := queries.NewGetPriceBreakdownQueryHandler()

	t.Run("should compute breakdown with display strings", func(t *testing.T) {
		resp, err := h.Handle(queries.NewGetPriceBreakdownQuery("20", "4", "25", "20"))

		require.NoError(t, err)
		assert.InDelta(t, 144.0, resp.RecommendedPrice, 0)
		assert.Equal(t, "20.00", resp.MaterialsDisplay)
		assert.Equal(t, "100.00", resp.LaborCostDisplay)
		assert.Equal(t, "24.00", resp.OverheadDisplay)
		assert.Equal(t, "144", resp.RecommendedDisplay)
	})

	t.Run("should price empty form at zero", func(t *testing.T) {
		resp, err := h.Handle(queries.NewGetPriceBreakdownQuery("", "", "", ""))

		require.NoError(t, err)
		assert.Equal(t, "0", resp.RecommendedDisplay)
	})

	t.Run("should round displayed cents from the binary value", func(t *testing.T) {
		resp, err := h.Handle(queries.NewGetPriceBreakdownQuery("1.005", "", "", ""))
		require.NoError(t, err)
		assert.Equal(t, "1.00", resp.MaterialsDisplay)

		resp, err = h.Handle(queries.NewGetPriceBreakdownQuery("0.125", "", "", ""))
		require.NoError(t, err)
		assert.Equal(t, "0.13", resp.MaterialsDisplay)

		resp, err = h.Handle(queries.NewGetPriceBreakdownQuery("2.675", "", "", ""))
		require.NoError(t, err)
		assert.Equal(t, "2.67", resp.MaterialsDisplay)
	})

	t.Run("should stay finite when labor overflows", func(t *testing.T) {
		var resp queries.PriceBreakdownResponse
		var err error
		require.NotPanics(t, func() {
			resp, err = h.Handle(queries.NewGetPriceBreakdownQuery("", "1e200", "1e200", ""))
		})

		require.NoError(t, err)
		assert.Equal(t, math.MaxFloat64, resp.RecommendedPrice)
		assert.Equal(t, "0.00", resp.MaterialsDisplay)
		assert.True(t, strings.HasPrefix(resp.LaborCostDisplay, "17976931348623157"))
		assert.True(t, strings.HasSuffix(resp.LaborCostDisplay, ".00"))
		assert.Len(t, resp.RecommendedDisplay, 309)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		_, err := h.Handle(queries.GetPriceBreakdownQuery{})

		assert.ErrorIs(t, err, queries.ErrGetPriceBreakdownQueryIsNotConstructed)
	})
}
