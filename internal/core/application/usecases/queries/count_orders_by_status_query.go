package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts orders for a filter key. The result always
// equals the length of GetOrdersQuery for the same key.
type CountOrdersByStatusQuery struct {
	filter services.StatusFilter
	guard  guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery(statusKey string) (CountOrdersByStatusQuery, error) {
	filter, err := services.ParseStatusFilter(statusKey)
	if err != nil {
		return CountOrdersByStatusQuery{}, err
	}
	return CountOrdersByStatusQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

func (q CountOrdersByStatusQuery) Filter() services.StatusFilter {
	return q.filter
}

// OrderStats holds the tab badges of the orders page: the total and one count
// per status, all taken from the same snapshot.
type OrderStats struct {
	All      int
	ByStatus map[order.Status]int
}

type CountOrdersByStatusQueryHandler struct {
	orders ports.OrderRepository
	board  services.OrderBoard
}

func NewCountOrdersByStatusQueryHandler(orders ports.OrderRepository) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{orders: orders, board: services.NewOrderBoard()}
}

func (h CountOrdersByStatusQueryHandler) Handle(ctx context.Context, query CountOrdersByStatusQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	return h.board.Count(all, query.Filter()), nil
}

// Stats counts every filter key at once.
func (h CountOrdersByStatusQueryHandler) Stats(ctx context.Context) (OrderStats, error) {
	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return OrderStats{}, err
	}

	return OrderStats{
		All:      h.board.Count(all, services.MatchAll()),
		ByStatus: h.board.StatusCounts(all),
	}, nil
}
