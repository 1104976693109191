package queries_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewListShipmentsQuery_Limit(t *testing.T) {
	for _, limit := range []int{0, -1, 101} {
		_, err := queries.NewListShipmentsQuery(admin, nil, nil, limit)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, limit)
	}

	q, err := queries.NewListShipmentsQuery(admin, nil, nil, queries.MaxListLimit)
	require.NoError(t, err)
	assert.Equal(t, 100, q.Limit())
}

func TestNewListShipmentsQuery_InvalidStatus(t *testing.T) {
	bad := shipment.Status(99)
	_, err := queries.NewListShipmentsQuery(admin, &bad, nil, 10)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListShipmentsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	ids := &sequence{}
	placed := shipment.Placed
	destination := 11002
	query, err := queries.NewListShipmentsQuery(courier, &placed, &destination, 1)
	require.NoError(t, err)

	reader := new(MockShipmentReader)
	reader.On("List", ctx, ports.ShipmentFilter{Status: &placed, DestinationCode: &destination, Limit: 1}).
		Return([]*shipment.Shipment{newShipment(12701, "aluminum sheets", 11002, ids)}, nil).Once()

	h := queries.NewListShipmentsQueryHandler(reader, services.NewAccessPolicy())
	summaries, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(12701), summaries[0].ID)
	assert.Equal(t, "aluminum sheets", summaries[0].Content)
	assert.InDelta(t, 5.0, summaries[0].Weight, 0)
	assert.Equal(t, shipment.Placed, summaries[0].Status)
	assert.Equal(t, 11002, summaries[0].DestinationCode)
	assert.Equal(t, "Recipient aluminum sheets", summaries[0].RecipientName)
	reader.AssertExpectations(t)
}

func TestListShipmentsQueryHandler_Handle_EmptyIsNotAnError(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewListShipmentsQuery(customer, nil, nil, queries.DefaultListLimit)

	reader := new(MockShipmentReader)
	reader.On("List", ctx, mock.Anything).Return([]*shipment.Shipment{}, nil).Once()

	h := queries.NewListShipmentsQueryHandler(reader, services.NewAccessPolicy())
	summaries, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestGetShipmentQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetShipmentQuery(customer, 12701)
	expected := newShipment(12701, "aluminum sheets", 11002, &sequence{})

	reader := new(MockShipmentReader)
	reader.On("Get", ctx, int64(12701)).Return(expected, nil).Once()

	h := queries.NewGetShipmentQueryHandler(reader, services.NewAccessPolicy())
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Same(t, expected, got)
}

func TestGetShipmentQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetShipmentQuery(customer, 99999)

	reader := new(MockShipmentReader)
	reader.On("Get", ctx, int64(99999)).Return(nil, errs.NewObjectNotFoundError("Shipment", 99999)).Once()

	h := queries.NewGetShipmentQueryHandler(reader, services.NewAccessPolicy())
	_, err := h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewGetShipmentQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(admin, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetTrackingHistoryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	ids := &sequence{}
	s := newShipment(12701, "aluminum sheets", 11002, ids)
	_, err := s.AppendEvent("Hub", "sorted", shipment.InTransit, ids, s.CreatedAt())
	require.NoError(t, err)
	query, _ := queries.NewGetTrackingHistoryQuery(courier, 12701)

	reader := new(MockShipmentReader)
	reader.On("Get", ctx, int64(12701)).Return(s, nil).Once()

	h := queries.NewGetTrackingHistoryQueryHandler(reader, services.NewAccessPolicy())
	events, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].ID())
	assert.Equal(t, int64(2), events[1].ID())
}

func TestGetStatisticsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reader := new(MockShipmentReader)
	reader.On("CountByStatus", ctx).Return(map[shipment.Status]int{
		shipment.Placed:    2,
		shipment.Delivered: 1,
	}, nil).Once()

	h := queries.NewGetStatisticsQueryHandler(reader, services.NewAccessPolicy())
	stats, err := h.Handle(ctx, queries.NewGetStatisticsQuery(admin))

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[shipment.Placed])
	assert.NotContains(t, stats.ByStatus, shipment.InTransit)
}

func TestGetStatisticsQueryHandler_Handle_AdminOnly(t *testing.T) {
	reader := new(MockShipmentReader)
	h := queries.NewGetStatisticsQueryHandler(reader, services.NewAccessPolicy())

	for _, actor := range []user.Principal{courier, customer} {
		t.Run(actor.Username, func(t *testing.T) {
			_, err := h.Handle(t.Context(), queries.NewGetStatisticsQuery(actor))

			var denied *errs.AccessDeniedError
			require.ErrorAs(t, err, &denied)
			assert.Equal(t, []string{"admin"}, denied.RequiredRoles)
		})
	}
	reader.AssertNotCalled(t, "CountByStatus", mock.Anything)
}

func TestQueries_NotConstructed(t *testing.T) {
	h := queries.NewListShipmentsQueryHandler(new(MockShipmentReader), services.NewAccessPolicy())
	_, err := h.Handle(t.Context(), queries.ListShipmentsQuery{})
	require.ErrorIs(t, err, queries.ErrListShipmentsQueryIsNotConstructed)

	stats := queries.NewGetStatisticsQueryHandler(new(MockShipmentReader), services.NewAccessPolicy())
	_, err = stats.Handle(t.Context(), queries.GetStatisticsQuery{})
	require.ErrorIs(t, err, queries.ErrGetStatisticsQueryIsNotConstructed)
}
