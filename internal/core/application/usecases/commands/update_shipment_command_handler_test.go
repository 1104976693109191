package commands_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func statusPtr(s shipment.Status) *shipment.Status { return &s }

func TestNewUpdateShipmentCommand_Validation(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(admin, 0, shipment.Patch{Status: statusPtr(shipment.Status(42))})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "shipment id")
	assert.Contains(t, err.Error(), "status")
}

func TestUpdateShipmentCommandHandler_Handle_Transition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentCommand(courier, 12701, shipment.Patch{Status: statusPtr(shipment.InTransit)})
	require.NoError(t, err)

	repo := &MockShipmentRepository{lastEventID: 3}
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(12701)).Return(placedShipment(), nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory, services.NewAccessPolicy())
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, updated.Status())
	last := updated.LastEvent()
	assert.Equal(t, int64(4), last.ID())
	assert.Equal(t, "Distribution Center", last.Location())
	assert.Equal(t, "Status updated to in_transit", last.Description())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateShipmentCommand(admin, 12701, shipment.Patch{Status: statusPtr(shipment.Delivered)})

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(12701)).Return(placedShipment(), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory, services.NewAccessPolicy())
	_, err := h.Handle(ctx, cmd)

	var transitionErr *shipment.StatusTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, shipment.Placed, transitionErr.Current)
	assert.Equal(t, shipment.Delivered, transitionErr.Requested)
	assert.Equal(t, []string{"in_transit", "cancelled"}, transitionErr.ValidNextNames())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateShipmentCommand(admin, 99999, shipment.Patch{})

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(99999)).Return(nil, errs.NewObjectNotFoundError("Shipment", 99999)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory, services.NewAccessPolicy())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateShipmentCommandHandler_Handle_CustomerIsDenied(t *testing.T) {
	cmd, _ := commands.NewUpdateShipmentCommand(customer, 12701, shipment.Patch{Status: statusPtr(shipment.Cancelled)})
	factory := new(MockShipmentUoWFactory)

	h := commands.NewUpdateShipmentCommandHandler(factory, services.NewAccessPolicy())
	_, err := h.Handle(t.Context(), cmd)

	var denied *errs.AccessDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, []string{"admin", "courier"}, denied.RequiredRoles)
	factory.AssertNotCalled(t, "Create")
}
