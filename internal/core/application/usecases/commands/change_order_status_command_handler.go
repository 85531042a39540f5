package commands

import (
	"context"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ChangeOrderStatusResult is the updated order plus the confirmation shown to
// the seller.
type ChangeOrderStatusResult struct {
	Order  *order.Order
	Notice notices.Notice
}

// ChangeOrderStatusCommandHandler is the only way an existing order changes.
// Load, change and save run in one unit of work, so two concurrent changes to
// the same order never interleave.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown order. The stored
// order is untouched on any failure.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	notice := notices.OrderStatusChanged(o.ID(), o.Status().String())
	notify(ctx, h.notifier, notice)

	return ChangeOrderStatusResult{Order: o, Notice: notice}, nil
}
