package notices_test

import (
	"testing"

	"storefront/internal/core/application/notices"

	"github.com/stretchr/testify/assert"
)

func TestNotices(t *testing.T) {
	t.Run("order status changed", func(t *testing.T) {
		n := notices.OrderStatusChanged("ORD-001", "shipped")

		assert.Equal(t, notices.KindOrderStatusChanged, n.Kind)
		assert.Equal(t, "Order Updated", n.Title)
		assert.Equal(t, "Order ORD-001 status changed to shipped.", n.Description)
		assert.Equal(t, "ORD-001", n.Subject)
		assert.False(t, n.OccurredAt.IsZero())
	})

	t.Run("product added", func(t *testing.T) {
		n := notices.ProductAdded("id", "Handwoven Basket")

		assert.Equal(t, "Product Added", n.Title)
		assert.Equal(t, "Handwoven Basket has been added to your store.", n.Description)
	})

	t.Run("profile saved", func(t *testing.T) {
		n := notices.ProfileSaved()

		assert.Equal(t, "Profile Updated", n.Title)
		assert.Equal(t, "Your profile information has been saved successfully.", n.Description)
		assert.Empty(t, n.Subject)
	})
}
