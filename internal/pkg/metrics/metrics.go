// Package metrics exposes the storefront's Prometheus instruments: HTTP
// request metrics and the catalog and order gauges kept fresh by the stats jobs.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry so several instances (tests, one per server) never
// collide on registration.
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	requestCounter   *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	statusCategories *prometheus.CounterVec
	orders           *prometheus.GaugeVec
	products         *prometheus.GaugeVec
	revenue          prometheus.Gauge
}

func New(serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		registry:    prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategories: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category", "method", "path"},
		),
		orders: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "storefront_orders",
				Help: "Number of orders per fulfillment status",
			},
			[]string{"status"},
		),
		products: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "storefront_products",
				Help: "Number of catalog products per availability",
			},
			[]string{"availability"},
		),
		revenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_completed_revenue",
			Help: "Sum of completed order amounts",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCounter,
		m.requestDuration,
		m.statusCategories,
		m.orders,
		m.products,
		m.revenue,
	)
	return m
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// SetOrders records the order count of one status.
func (m *Metrics) SetOrders(status string, count int) {
	m.orders.WithLabelValues(status).Set(float64(count))
}

// SetProducts records the product count of one availability.
func (m *Metrics) SetProducts(availability string, count int) {
	m.products.WithLabelValues(availability).Set(float64(count))
}

func (m *Metrics) SetRevenue(amount float64) {
	m.revenue.Set(amount)
}

// Middleware records request counts and latency. The route template is used
// as path label to keep cardinality bounded.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			m.requestCounter.WithLabelValues(m.serviceName, method, path, statusStr).Inc()
			m.requestDuration.WithLabelValues(m.serviceName, method, path, statusStr).
				Observe(time.Since(start).Seconds())
			if category := statusCategory(status); category != "" {
				m.statusCategories.WithLabelValues(m.serviceName, category, method, path).Inc()
			}

			return nil
		}
	}
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	default:
		return ""
	}
}
