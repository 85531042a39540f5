package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the use cases that change state.
type CommandHandlers struct {
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	ReceiveOrder      commands.ReceiveOrderCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler
	SaveProfile       commands.SaveSellerProfileCommandHandler
}

// QueryHandlers groups the read-only use cases.
type QueryHandlers struct {
	Orders         queries.GetOrdersQueryHandler
	CountOrders    queries.CountOrdersByStatusQueryHandler
	Dashboard      queries.GetDashboardSummaryQueryHandler
	PriceBreakdown queries.GetPriceBreakdownQueryHandler
	Products       queries.GetProductsQueryHandler
	Product        queries.GetProductQueryHandler
	Profile        queries.GetSellerProfileQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewGetOrdersQuery(statusKey(params.Status))
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.queries.Orders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// ReceiveOrder handles POST /api/v1/orders.
func (s *Server) ReceiveOrder(ctx echo.Context) error {
	var body servers.ReceiveOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewReceiveOrderCommand(fromNewOrder(body))
	if err != nil {
		return fail(ctx, err)
	}

	o, err := s.commands.ReceiveOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// CountOrders handles GET /api/v1/orders/count.
func (s *Server) CountOrders(ctx echo.Context, params servers.CountOrdersParams) error {
	key := statusKey(params.Status)
	query, err := queries.NewCountOrdersByStatusQuery(key)
	if err != nil {
		return fail(ctx, err)
	}

	count, err := s.queries.CountOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderCount{Status: key, Count: count})
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.queries.CountOrders.Stats(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStats{
		All:      stats.All,
		ByStatus: toStatusCounts(stats.ByStatus),
	})
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID string) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, body.Status)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChangeResult{
		Order:  toOrder(result.Order),
		Notice: toNotice(result.Notice),
	})
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	summary, err := s.queries.Dashboard.Handle(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDashboard(summary))
}

// GetPriceBreakdown handles GET /api/v1/pricing/breakdown. The parameters
// are the raw form fields, so nothing here is rejected.
func (s *Server) GetPriceBreakdown(ctx echo.Context, params servers.GetPriceBreakdownParams) error {
	query := queries.NewGetPriceBreakdownQuery(
		value(params.MaterialsCost),
		value(params.TimeHours),
		value(params.HourlyRate),
		value(params.OverheadPercent),
	)

	breakdown, err := s.queries.PriceBreakdown.Handle(query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPriceBreakdown(breakdown))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.queries.Products.Handle(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(fromProductForm(body))
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ProductResult{
		Product: toProduct(result.Product),
		Notice:  toNotice(result.Notice),
	})
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productID openapi_types.UUID) error {
	p, err := s.queries.Product.Handle(ctx.Request().Context(), productID.String())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProduct(p))
}

// UpdateProduct handles PUT /api/v1/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productID openapi_types.UUID) error {
	var body servers.UpdateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(productID.String(), fromProductForm(body))
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ProductResult{
		Product: toProduct(result.Product),
		Notice:  toNotice(result.Notice),
	})
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productID openapi_types.UUID) error {
	cmd, err := commands.NewDeleteProductCommand(productID.String())
	if err != nil {
		return fail(ctx, err)
	}

	notice, err := s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toNotice(notice))
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	profile, err := s.queries.Profile.Handle(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfile(profile))
}

// SaveProfile handles PUT /api/v1/profile.
func (s *Server) SaveProfile(ctx echo.Context) error {
	var body servers.SaveProfileJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSaveSellerProfileCommand(fromProfile(body))
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.commands.SaveProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ProfileResult{
		Profile: toProfile(result.Profile),
		Notice:  toNotice(result.Notice),
	})
}

// statusKey turns an omitted filter into the "all" key.
func statusKey(status *string) string {
	if status == nil || *status == "" {
		return services.AllStatuses
	}
	return *status
}
