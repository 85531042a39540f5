package http_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/memory"
	"storefront/internal/adapters/out/seed"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type orderUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (o orderUoWFactory) Create() commands.OrderUoW { return o.f.Create() }

type productUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (p productUoWFactory) Create() commands.ProductUoW { return p.f.Create() }

type profileUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (p profileUoWFactory) Create() commands.ProfileUoW { return p.f.Create() }

type ServerTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	store := memory.NewStore()
	uows := memory.NewUnitOfWorkFactory(store)

	f, err := seed.LoadFile("../../../../configs/seed.yaml")
	s.Require().NoError(err)
	s.Require().NoError(f.Apply(context.Background(), uows.Create()))

	server := httpin.NewServer(
		httpin.CommandHandlers{
			ChangeOrderStatus: commands.NewChangeOrderStatusCommandHandler(orderUoWFactory{uows}, nil),
			ReceiveOrder:      commands.NewReceiveOrderCommandHandler(orderUoWFactory{uows}, nil),
			CreateProduct:     commands.NewCreateProductCommandHandler(productUoWFactory{uows}, nil),
			UpdateProduct:     commands.NewUpdateProductCommandHandler(productUoWFactory{uows}, nil),
			DeleteProduct:     commands.NewDeleteProductCommandHandler(productUoWFactory{uows}, nil),
			SaveProfile:       commands.NewSaveSellerProfileCommandHandler(profileUoWFactory{uows}, nil),
		},
		httpin.QueryHandlers{
			Orders:         queries.NewGetOrdersQueryHandler(store.Orders()),
			CountOrders:    queries.NewCountOrdersByStatusQueryHandler(store.Orders()),
			Dashboard:      queries.NewGetDashboardSummaryQueryHandler(store.Orders(), store.Products()),
			PriceBreakdown: queries.NewGetPriceBreakdownQueryHandler(),
			Products:       queries.NewGetProductsQueryHandler(store.Products()),
			Product:        queries.NewGetProductQueryHandler(store.Products()),
			Profile:        queries.NewGetSellerProfileQueryHandler(store.Profiles()),
		},
	)

	s.e, err = httpin.NewRouter(server, metrics.New("storefront-test"))
	s.Require().NoError(err)
}

func (s *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *ServerTestSuite) assertError(rec *httptest.ResponseRecorder, status int, code string) {
	s.Require().Equal(status, rec.Code, rec.Body.String())
	var e servers.Error
	s.decode(rec, &e)
	s.Equal(code, e.Code)
	s.NotEmpty(e.Message)
}

func (s *ServerTestSuite) orderIDs(orders []servers.Order) []string {
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.Id
	}
	return ids
}

func (s *ServerTestSuite) TestListOrders_AllInReceivedOrder() {
	rec := s.do(http.MethodGet, "/api/v1/orders", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var orders []servers.Order
	s.decode(rec, &orders)
	s.Equal([]string{"ORD-001", "ORD-002", "ORD-003", "ORD-004", "ORD-005"}, s.orderIDs(orders))
	s.Equal("in-progress", orders[1].Status)
	s.Equal("In Progress", orders[1].StatusLabel)
	s.Equal("2024-01-14", orders[1].Date.String())
	s.NotNil(orders[0].ProductId)
}

func (s *ServerTestSuite) TestListOrders_ByStatus() {
	rec := s.do(http.MethodGet, "/api/v1/orders?status=completed", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var orders []servers.Order
	s.decode(rec, &orders)
	s.Equal([]string{"ORD-003", "ORD-005"}, s.orderIDs(orders))
}

func (s *ServerTestSuite) TestListOrders_UnknownStatus() {
	s.assertError(s.do(http.MethodGet, "/api/v1/orders?status=cancelled", ""),
		http.StatusUnprocessableEntity, httpin.CodeInvalidStatus)
}

func (s *ServerTestSuite) TestCountOrders() {
	for key, want := range map[string]int{"all": 5, "pending": 1, "in-progress": 1, "shipped": 1, "completed": 2} {
		rec := s.do(http.MethodGet, "/api/v1/orders/count?status="+key, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var count servers.OrderCount
		s.decode(rec, &count)
		s.Equal(want, count.Count, key)
		s.Equal(key, count.Status)
	}

	s.assertError(s.do(http.MethodGet, "/api/v1/orders/count?status=Shipped", ""),
		http.StatusUnprocessableEntity, httpin.CodeInvalidStatus)
}

func (s *ServerTestSuite) TestOrderStats_CountsPartitionTotal() {
	rec := s.do(http.MethodGet, "/api/v1/orders/stats", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var stats servers.OrderStats
	s.decode(rec, &stats)
	sum := 0
	for _, n := range stats.ByStatus {
		sum += n
	}
	s.Equal(5, stats.All)
	s.Equal(stats.All, sum)
	s.Len(stats.ByStatus, 4)
}

func (s *ServerTestSuite) TestChangeOrderStatus_CompletedBackToShipped() {
	rec := s.do(http.MethodPut, "/api/v1/orders/ORD-003/status", `{"status":"shipped"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var result servers.StatusChangeResult
	s.decode(rec, &result)
	s.Equal("shipped", result.Order.Status)
	s.Equal("Order ORD-003 status changed to shipped.", result.Notice.Description)

	rec = s.do(http.MethodGet, "/api/v1/orders", "")
	var orders []servers.Order
	s.decode(rec, &orders)
	s.Equal([]string{"ORD-001", "ORD-002", "ORD-003", "ORD-004", "ORD-005"}, s.orderIDs(orders))
	s.Equal("shipped", orders[2].Status)
}

func (s *ServerTestSuite) TestChangeOrderStatus_Errors() {
	s.assertError(s.do(http.MethodPut, "/api/v1/orders/ORD-999/status", `{"status":"shipped"}`),
		http.StatusNotFound, httpin.CodeNotFound)
	s.assertError(s.do(http.MethodPut, "/api/v1/orders/ORD-001/status", `{"status":"lost"}`),
		http.StatusUnprocessableEntity, httpin.CodeInvalidStatus)
	s.assertError(s.do(http.MethodPut, "/api/v1/orders/ORD-001/status", `{}`),
		http.StatusBadRequest, httpin.CodeInvalidValue)

	// The failed attempts left the order alone.
	rec := s.do(http.MethodGet, "/api/v1/orders?status=pending", "")
	var orders []servers.Order
	s.decode(rec, &orders)
	s.Equal([]string{"ORD-001"}, s.orderIDs(orders))
}

func (s *ServerTestSuite) TestReceiveOrder() {
	body := `{"id":"ORD-006","customerName":"Ana Lima","customerEmail":"ana@example.com",
		"address":"1 Main St","product":"Ceramic Vase","amount":120,"date":"2024-02-01"}`
	rec := s.do(http.MethodPost, "/api/v1/orders", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var o servers.Order
	s.decode(rec, &o)
	s.Equal("ORD-006", o.Id)
	s.Equal("pending", o.Status)
	s.Equal("2024-02-01", o.Date.String())

	s.assertError(s.do(http.MethodPost, "/api/v1/orders", body), http.StatusConflict, httpin.CodeConflict)
}

func (s *ServerTestSuite) TestReceiveOrder_Invalid() {
	s.assertError(s.do(http.MethodPost, "/api/v1/orders", `{"id":"ORD-007","customerName":"Ana"}`),
		http.StatusBadRequest, httpin.CodeInvalidValue)

	body := `{"id":"ORD-007","customerName":"Ana","customerEmail":"ana@example.com",
		"address":"1 Main St","product":"Vase","amount":10,"status":"lost"}`
	s.assertError(s.do(http.MethodPost, "/api/v1/orders", body),
		http.StatusUnprocessableEntity, httpin.CodeInvalidStatus)

	tooLarge := `{"id":"ORD-008","customerName":"Ana","customerEmail":"ana@example.com",
		"address":"1 Main St","product":"Vase","amount":1e12}`
	s.assertError(s.do(http.MethodPost, "/api/v1/orders", tooLarge),
		http.StatusBadRequest, httpin.CodeInvalidValue)
}

func (s *ServerTestSuite) TestDashboard() {
	rec := s.do(http.MethodGet, "/api/v1/dashboard", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var d servers.DashboardSummary
	s.decode(rec, &d)
	s.Equal(5, d.TotalOrders)
	s.Equal(3, d.ActiveOrders)
	s.Equal(2, d.CompletedOrders)
	s.Equal(3, d.TotalProducts)
	s.InDelta(120.0, d.Revenue, 1e-9)
	s.InDelta(60.0, d.AverageOrderValue, 1e-9)
	s.Equal([]string{"ORD-001", "ORD-002", "ORD-003"}, s.orderIDs(d.RecentOrders))
}

func (s *ServerTestSuite) TestPriceBreakdown() {
	rec := s.do(http.MethodGet,
		"/api/v1/pricing/breakdown?materialsCost=20&timeHours=4&hourlyRate=25&overheadPercent=20", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var b servers.PriceBreakdown
	s.decode(rec, &b)
	s.InDelta(144.0, b.RecommendedPrice, 0)
	s.InDelta(120.0, b.Subtotal, 1e-9)
	s.Equal(servers.PriceDisplay{
		Materials:        "20.00",
		LaborCost:        "100.00",
		Overhead:         "24.00",
		RecommendedPrice: "144",
	}, b.Display)
}

func (s *ServerTestSuite) TestPriceBreakdown_EmptyForm() {
	rec := s.do(http.MethodGet, "/api/v1/pricing/breakdown", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var b servers.PriceBreakdown
	s.decode(rec, &b)
	s.Zero(b.RecommendedPrice)
	s.Equal("0.00", b.Display.Materials)
}

func (s *ServerTestSuite) TestPriceBreakdown_OverflowingLabor() {
	rec := s.do(http.MethodGet, "/api/v1/pricing/breakdown?timeHours=1e200&hourlyRate=1e200", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var b servers.PriceBreakdown
	s.decode(rec, &b)
	s.Equal(math.MaxFloat64, b.LaborCost)
	s.Equal(math.MaxFloat64, b.Subtotal)
	s.Equal(math.MaxFloat64, b.RecommendedPrice)
	s.Equal("0.00", b.Display.Materials)
	s.True(strings.HasSuffix(b.Display.LaborCost, ".00"))
}

func (s *ServerTestSuite) TestPriceBreakdown_DisplayRoundsLikeTheForm() {
	rec := s.do(http.MethodGet, "/api/v1/pricing/breakdown?materialsCost=1.005", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var b servers.PriceBreakdown
	s.decode(rec, &b)
	s.Equal("1.00", b.Display.Materials)
	s.InDelta(2.0, b.RecommendedPrice, 0)
}

func (s *ServerTestSuite) TestProductLifecycle() {
	rec := s.do(http.MethodPost, "/api/v1/products",
		`{"name":"Clay Mug","category":"Pottery","price":144,"availability":"made-to-order"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.ProductResult
	s.decode(rec, &created)
	s.Equal("Clay Mug has been added to your store.", created.Notice.Description)
	s.Equal([]string{}, created.Product.Images)
	path := "/api/v1/products/" + created.Product.Id.String()

	rec = s.do(http.MethodPut, path,
		`{"name":"Clay Mug","category":"Pottery","price":150,"availability":"available","images":["/mug.png"]}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, path, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var p servers.Product
	s.decode(rec, &p)
	s.InDelta(150.0, p.Price, 0)
	s.Equal("available", p.Availability)
	s.Equal([]string{"/mug.png"}, p.Images)

	rec = s.do(http.MethodGet, "/api/v1/products", "")
	var all []servers.Product
	s.decode(rec, &all)
	s.Require().Len(all, 4)
	s.Equal("Clay Mug", all[3].Name)

	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, path, "").Code)
	s.assertError(s.do(http.MethodGet, path, ""), http.StatusNotFound, httpin.CodeNotFound)
	s.assertError(s.do(http.MethodDelete, path, ""), http.StatusNotFound, httpin.CodeNotFound)
}

func (s *ServerTestSuite) TestProduct_Invalid() {
	s.assertError(s.do(http.MethodPost, "/api/v1/products",
		`{"name":"Mug","category":"Pottery","price":10,"availability":"sold-out"}`),
		http.StatusUnprocessableEntity, httpin.CodeInvalidStatus)
	s.assertError(s.do(http.MethodPost, "/api/v1/products",
		`{"name":"Mug","category":"Pottery","price":-1,"availability":"available"}`),
		http.StatusBadRequest, httpin.CodeInvalidValue)
	s.assertError(s.do(http.MethodGet, "/api/v1/products/not-a-uuid", ""),
		http.StatusBadRequest, httpin.CodeInvalidValue)
}

func (s *ServerTestSuite) TestProfile() {
	rec := s.do(http.MethodGet, "/api/v1/profile", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var p servers.SellerProfile
	s.decode(rec, &p)
	s.Equal("Sarah Johnson", p.Name)

	rec = s.do(http.MethodPut, "/api/v1/profile", `{"name":"Sarah J.","email":"sarah@example.com"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var result servers.ProfileResult
	s.decode(rec, &result)
	s.Equal("Your profile information has been saved successfully.", result.Notice.Description)
	s.Nil(result.Profile.Phone)

	s.assertError(s.do(http.MethodPut, "/api/v1/profile", `{"name":"","email":"sarah@example.com"}`),
		http.StatusBadRequest, httpin.CodeInvalidValue)
}

func (s *ServerTestSuite) TestOperationalRoutes() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", "").Code)

	rec := s.do(http.MethodGet, "/api/v1/orders", "")
	s.NotEmpty(rec.Header().Get("X-Request-ID"))

	rec = s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "http_requests_total")

	rec = s.do(http.MethodGet, "/swagger/doc.json", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ChangeOrderStatus")

	s.assertError(s.do(http.MethodGet, "/api/v1/unknown", ""), http.StatusNotFound, httpin.CodeNotFound)
}
