package memory_test

import (
	"testing"
	"time"

	"lastmile/internal/adapters/out/memory"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	samples, err := memory.SampleShipments()
	require.NoError(t, err)
	store := memory.NewStore()
	require.NoError(t, store.Seed(samples, nil))
	return store
}

func ids(shipments []*shipment.Shipment) []int64 {
	out := make([]int64, len(shipments))
	for i, s := range shipments {
		out[i] = s.ID()
	}
	return out
}

func TestShipmentReader_List(t *testing.T) {
	store := seededStore(t)
	reader := store.Shipments()
	placed := shipment.Placed
	delivered := shipment.Delivered
	destination := 11002
	unknownDestination := 99999

	tests := []struct {
		name     string
		filter   ports.ShipmentFilter
		expected []int64
	}{
		{"no filter keeps insertion order", ports.ShipmentFilter{Limit: 10}, []int64{12701, 12702, 12703}},
		{"status and destination with limit", ports.ShipmentFilter{Status: &placed, DestinationCode: &destination, Limit: 1}, []int64{12701}},
		{"destination only", ports.ShipmentFilter{DestinationCode: &destination, Limit: 10}, []int64{12701, 12703}},
		{"limit after filtering", ports.ShipmentFilter{DestinationCode: &destination, Limit: 1}, []int64{12701}},
		{"status only", ports.ShipmentFilter{Status: &delivered, Limit: 10}, []int64{12703}},
		{"no match", ports.ShipmentFilter{DestinationCode: &unknownDestination, Limit: 10}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reader.List(t.Context(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestShipmentReader_CountByStatus(t *testing.T) {
	counts, err := seededStore(t).Shipments().CountByStatus(t.Context())

	require.NoError(t, err)
	assert.Equal(t, map[shipment.Status]int{
		shipment.Placed:    1,
		shipment.InTransit: 1,
		shipment.Delivered: 1,
	}, counts)
}

func TestShipmentReader_Get_NotFound(t *testing.T) {
	_, err := seededStore(t).Shipments().Get(t.Context(), 1)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Shipment", notFound.ParamName)
	assert.Equal(t, int64(1), notFound.ID)
}

func TestStore_Seed(t *testing.T) {
	samples, err := memory.SampleShipments()
	require.NoError(t, err)

	t.Run("sample data is coherent", func(t *testing.T) {
		require.Len(t, samples, 3)
		assert.Equal(t, shipment.Placed, samples[0].Status())
		assert.Equal(t, shipment.InTransit, samples[1].Status())
		assert.Equal(t, shipment.Delivered, samples[2].Status())
		assert.True(t, samples[2].PackageDetails().Fragile())
		assert.Equal(t, int64(3), samples[2].LastEvent().ID())
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, store.Seed(samples, nil))
		require.ErrorIs(t, store.Seed(samples[:1], nil), errs.ErrAlreadyExists)
	})

	t.Run("event counter continues after seed", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, store.Seed(samples, nil))
		assert.Equal(t, int64(4), store.NextEventID())
	})

	t.Run("empty store starts at the first tracking number", func(t *testing.T) {
		store := memory.NewStore()
		factory := memory.NewUnitOfWorkFactory(store)
		uow := factory.Create()
		require.NoError(t, uow.Begin(t.Context()))
		id, err := uow.ShipmentRepository().NextID(t.Context())
		require.NoError(t, err)
		require.NoError(t, uow.Rollback(t.Context()))

		assert.Equal(t, memory.FirstShipmentID, id)
		assert.Equal(t, int64(1), store.NextEventID())
	})
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }
func (plainHasher) Compare(hash, password string) error {
	if hash != "h:"+password {
		return errs.ErrInvalidCredentials
	}
	return nil
}

func TestDefaultUsers(t *testing.T) {
	users, err := memory.DefaultUsers(plainHasher{}, time.Now())
	require.NoError(t, err)

	store := memory.NewStore()
	require.NoError(t, store.Seed(nil, users))
	assert.Equal(t, 3, store.Users().Count())

	courier, err := store.Users().Get(t.Context(), "courier")
	require.NoError(t, err)
	assert.Equal(t, "h:courier123", courier.PasswordHash())
	assert.Equal(t, "courier@logixpress.com", courier.Email().String())
	assert.False(t, courier.Disabled())
}
