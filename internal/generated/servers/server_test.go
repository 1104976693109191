package servers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lastmile/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	assert.Equal(t, "LOGIXPress API", doc.Info.Title)
	for _, path := range []string{"/", "/health", "/stats", "/auth/login", "/auth/register", "/auth/me", "/shipments", "/shipment", "/shipment/{id}", "/shipment/{id}/tracking"} {
		assert.NotNil(t, doc.Paths.Value(path), path)
	}
}

type recordingServer struct {
	servers.ServerInterface
	id     servers.ShipmentID
	params servers.ListShipmentsParams
	scopes any
}

func (s *recordingServer) GetShipment(ctx echo.Context, id servers.ShipmentID) error {
	s.id = id
	s.scopes = ctx.Get(servers.BearerAuthScopes)
	return ctx.NoContent(http.StatusNoContent)
}

func (s *recordingServer) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	s.params = params
	return ctx.NoContent(http.StatusNoContent)
}

func (s *recordingServer) GetHealth(ctx echo.Context) error {
	s.scopes = ctx.Get(servers.BearerAuthScopes)
	return ctx.NoContent(http.StatusNoContent)
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRegisterHandlers_BindsParameters(t *testing.T) {
	e := echo.New()
	server := &recordingServer{}
	servers.RegisterHandlers(e, server)

	t.Run("path id", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/shipment/12701")
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, int64(12701), server.id)
		assert.Equal(t, []string{}, server.scopes, "secured operations carry bearer scopes")
	})

	t.Run("malformed path id", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/shipment/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("query parameters", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/shipments?status=delivered&destination_code=11002&limit=1")
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, server.params.Status)
		assert.Equal(t, servers.Delivered, *server.params.Status)
		assert.Equal(t, 11002, *server.params.DestinationCode)
		assert.Equal(t, 1, *server.params.Limit)
	})

	t.Run("absent query parameters", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/shipments")
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, server.params.Status)
		assert.Nil(t, server.params.Limit)
	})

	t.Run("public operations carry no scopes", func(t *testing.T) {
		server.scopes = nil
		rec := serve(e, http.MethodGet, "/health")
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, server.scopes)
	})
}
