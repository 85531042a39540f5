package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	m := metrics.New("storefront")
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/orders/:orderId", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/v1/orders", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	})

	for range 2 {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-1", nil))
	}
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil))

	expected := `
# HELP http_status_category_total Total number of responses by status category (2xx, 4xx, 5xx)
# TYPE http_status_category_total counter
http_status_category_total{category="2xx",method="GET",path="/api/v1/orders/:orderId",service="storefront"} 2
http_status_category_total{category="4xx",method="POST",path="/api/v1/orders",service="storefront"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "http_status_category_total"))
}

func TestMetrics_Gauges(t *testing.T) {
	m := metrics.New("storefront")

	m.SetOrders("pending", 3)
	m.SetOrders("pending", 2)
	m.SetProducts("made-to-order", 4)
	m.SetRevenue(153)

	expected := `
# HELP storefront_orders Number of orders per fulfillment status
# TYPE storefront_orders gauge
storefront_orders{status="pending"} 2
# HELP storefront_products Number of catalog products per availability
# TYPE storefront_products gauge
storefront_products{availability="made-to-order"} 4
# HELP storefront_completed_revenue Sum of completed order amounts
# TYPE storefront_completed_revenue gauge
storefront_completed_revenue 153
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"storefront_orders", "storefront_products", "storefront_completed_revenue"))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New("storefront")
	m.SetOrders("shipped", 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storefront_orders{status="shipped"} 1`)
}
