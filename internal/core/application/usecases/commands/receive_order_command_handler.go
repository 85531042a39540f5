package commands

import (
	"context"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ReceiveOrderCommandHandler stores orders coming from the purchase flow,
// either over HTTP or from the orders queue.
type ReceiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

func NewReceiveOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle fails with errs.ErrObjectAlreadyExists when the order id is taken.
func (h *ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.RestoreOrder(
		cmd.OrderID(),
		cmd.Customer(),
		cmd.Product(),
		cmd.Amount(),
		cmd.Status(),
		cmd.Date(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notify(ctx, h.notifier, notices.OrderReceived(o.ID(), o.Product().Name()))

	return o, nil
}
