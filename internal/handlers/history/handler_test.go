package history_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "innflow/infras/otel/mocks"
	"innflow/internal/domains/history/model/dto"
	"innflow/internal/domains/history/service"
	"innflow/internal/domains/history/service/mocks"
	"innflow/internal/handlers/history"
	"innflow/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetMyBookings(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		setupMock    func(svc *mocks.MockHistory)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "token is forwarded",
			token: "token-1",
			setupMock: func(svc *mocks.MockHistory) {
				svc.EXPECT().MyBookings(gomock.Any(), "token-1").Return(dto.MyBookingsResponse{Bookings: []dto.RecordResponse{}, Message: dto.MessageEmpty}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"data":{"bookings":[],"total_data":0,"message":"You have no active or past bookings to review."}}`,
		},
		{
			name: "not logged in",
			setupMock: func(svc *mocks.MockHistory) {
				svc.EXPECT().MyBookings(gomock.Any(), "").Return(dto.MyBookingsResponse{}, failure.Unauthorized(service.MessageLoadFailed))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Could not load your bookings. Please ensure you are logged in."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockHistory(ctrl)
			tt.setupMock(mockService)

			handler := history.New(mockService, otelMocks.NewOtel())

			router := chi.NewRouter()
			handler.Router(router)

			req := httptest.NewRequest(http.MethodGet, "/bookings/me", nil)
			if tt.token != "" {
				req.Header.Set("x-auth-token", tt.token)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
