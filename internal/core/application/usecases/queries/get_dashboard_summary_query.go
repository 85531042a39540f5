package queries

import (
	"context"

	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// GetDashboardSummaryQueryHandler builds the seller's business overview.
// The query has no parameters, so there is no query type.
type GetDashboardSummaryQueryHandler struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	board    services.OrderBoard
}

func NewGetDashboardSummaryQueryHandler(
	orders ports.OrderRepository,
	products ports.ProductRepository,
) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{orders: orders, products: products, board: services.NewOrderBoard()}
}

func (h GetDashboardSummaryQueryHandler) Handle(ctx context.Context) (services.DashboardSummary, error) {
	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return services.DashboardSummary{}, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return services.DashboardSummary{}, err
	}

	return h.board.Summarize(orders, len(products)), nil
}
