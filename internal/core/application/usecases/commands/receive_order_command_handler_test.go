package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceiveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveOrderCommand(basketIntake())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == "ORD-001" && o.Status() == order.Pending
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(n notices.Notice) bool {
			return n.Kind == notices.KindOrderReceived && n.Subject == "ORD-001"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveOrderCommandHandler(factory, notifier)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "ORD-001", o.ID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReceiveOrderCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveOrderCommand(basketIntake())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewObjectAlreadyExistsError("order", "ORD-001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveOrderCommandHandler(factory, nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestReceiveOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveOrderCommand(basketIntake())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveOrderCommandHandler(factory, nil)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestReceiveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewReceiveOrderCommandHandler(new(MockOrderUoWFactory), nil)

	_, err := h.Handle(t.Context(), commands.ReceiveOrderCommand{})

	require.ErrorIs(t, err, commands.ErrReceiveOrderCommandIsNotConstructed)
}
