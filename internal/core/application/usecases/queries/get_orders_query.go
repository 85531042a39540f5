// Package queries contains read-only use cases. Handlers read committed state
// through the repository ports and never open a unit of work.
package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders matching a status filter key: "all" or one of
// the status codes.
//
// Example:
//
//	query, err := NewGetOrdersQuery("shipped")
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid for an unknown key
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	filter services.StatusFilter
	guard  guard.ConstructorGuard
}

func NewGetOrdersQuery(statusKey string) (GetOrdersQuery, error) {
	filter, err := services.ParseStatusFilter(statusKey)
	if err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() services.StatusFilter {
	return q.filter
}

type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
	board  services.OrderBoard
}

func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders, board: services.NewOrderBoard()}
}

// Handle returns the matching orders in the order they were received.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.board.Filter(all, query.Filter()), nil
}
