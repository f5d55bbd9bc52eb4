package commands_test

import (
	"testing"
	"time"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReturnOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingSettingOrder(t)
	returnDate, err := kernel.NewDate(2024, time.June, 12)
	require.NoError(t, err)

	cmd, err := commands.NewReturnOrderCommand(aggregate.ID(), returnDate, superAdmin(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusReturned, aggregate.Status())
	require.NotNil(t, aggregate.ReturnDate())
	assert.True(t, aggregate.ReturnDate().IsEqual(returnDate))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReturnOrderCommandHandler_Handle_MarketplaceAdminAllowed(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingSettingOrder(t)
	returnDate, err := kernel.NewDate(2024, time.June, 12)
	require.NoError(t, err)

	cmd, err := commands.NewReturnOrderCommand(aggregate.ID(), returnDate, marketplaceAdmin(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusReturned, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReturnOrderCommandHandler_Handle_WorkerForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingSettingOrder(t)
	returnDate, err := kernel.NewDate(2024, time.June, 12)
	require.NoError(t, err)

	actor := workerActor(t, account.RoleJahit, "Rina Jahit")
	cmd, err := commands.NewReturnOrderCommand(aggregate.ID(), returnDate, actor)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewReturnOrderCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestNewReturnOrderCommand_MissingDate(t *testing.T) {
	_, err := commands.NewReturnOrderCommand(kernel.NewUUID(), kernel.Date{}, superAdmin(t))
	require.Error(t, err)
}

func TestReturnOrderCommandHandler_Handle_AlreadyTerminal(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingSettingOrder(t)
	require.NoError(t, aggregate.Cancel("Super Admin", time.Now()))

	returnDate, err := kernel.NewDate(2024, time.June, 12)
	require.NoError(t, err)
	cmd, err := commands.NewReturnOrderCommand(aggregate.ID(), returnDate, superAdmin(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusCanceled, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
