package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"innflow/config"
	otelMocks "innflow/infras/otel/mocks"
	"innflow/internal/domains/room/model/dto"
	roomMocks "innflow/internal/domains/room/service/mocks"
	"innflow/internal/handlers/room"
	transport "innflow/transport/http"
	"innflow/transport/http/middleware"
	"innflow/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*transport.HTTP, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.App.Name = "innflow"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	ot := otelMocks.NewOtel()
	mockRooms := roomMocks.NewMockRoom(ctrl)

	r := router.New(router.DomainHandlers{
		Room: room.New(mockRooms, ot),
	})

	return transport.New(cfg, r, middleware.NewAppMiddleware(ot, cfg, nil), ot), mockRooms
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestHTTP_VersionedRoutes(t *testing.T) {
	server, mockRooms := newServer(t)

	mockRooms.EXPECT().Featured(gomock.Any()).Return([]dto.RoomResponse{}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/featured", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_CORS(t *testing.T) {
	server, _ := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/rooms", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
