package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"innflow/config"
	"innflow/infras/innflow"
	otelMocks "innflow/infras/otel/mocks"
	"innflow/internal/domains/booking/model"
	"innflow/internal/domains/booking/model/dto"
	"innflow/internal/domains/booking/service"
	"innflow/internal/domains/booking/wizard"
	wizardMocks "innflow/internal/domains/booking/wizard/mocks"
	roomModel "innflow/internal/domains/room/model"
	roomMocks "innflow/internal/domains/room/service/mocks"
	sessionModel "innflow/internal/domains/session/model"
	sessionDto "innflow/internal/domains/session/model/dto"
	sessionMocks "innflow/internal/domains/session/service/mocks"
	"innflow/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	remote   *wizardMocks.MockRemote
	sessions *sessionMocks.MockSession
	rooms    *roomMocks.MockRoom
	stored   *sessionModel.Session
}

func newService(ctrl *gomock.Controller) (service.Booking, *fixture) {
	f := &fixture{
		remote:   wizardMocks.NewMockRemote(ctrl),
		sessions: sessionMocks.NewMockSession(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.Currency = "₱"

	return service.New(f.remote, f.sessions, f.rooms, cfg, otelMocks.NewOtel()), f
}

// withSession makes the session mock apply mutations to stored, the way the
// real service does.
func (f *fixture) withSession(session sessionModel.Session) {
	f.stored = &session

	f.sessions.EXPECT().
		Mutate(gomock.Any(), session.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(*sessionModel.Session) error) (sessionModel.Session, error) {
			err := fn(f.stored)

			return *f.stored, err
		}).
		AnyTimes()
	f.sessions.EXPECT().
		Respond(gomock.Any()).
		DoAndReturn(func(session sessionModel.Session) sessionDto.SessionResponse {
			return sessionDto.SessionResponse{ID: session.ID, Page: string(session.Page)}
		}).
		AnyTimes()
}

func room() roomModel.Room {
	return roomModel.Room{
		ID:         7,
		RoomNumber: "7",
		Name:       "Double Deluxe 7",
		Category:   roomModel.CategoryDeluxeDouble,
		Capacity:   2,
		Price:      decimal.NewFromInt(1500),
		Available:  true,
	}
}

func selected() sessionModel.Session {
	session := sessionModel.New("abc", time.Now())
	session.Select(room())

	return session
}

func onStayStep() sessionModel.Session {
	session := selected()
	_ = session.Selection.SubmitGuest("Juan Dela Cruz", "juan@example.com", "09171234567")

	return session
}

func TestBookingService_SubmitGuest(t *testing.T) {
	tests := []struct {
		name          string
		session       sessionModel.Session
		req           dto.GuestRequest
		expectedCode  int
		expectedError string
		expectedState wizard.State
	}{
		{
			name:          "valid guest moves to the stay step",
			session:       selected(),
			req:           dto.GuestRequest{Name: "Juan", Email: "juan@example.com"},
			expectedState: wizard.StateCollectingStay,
		},
		{
			name:          "missing name",
			session:       selected(),
			req:           dto.GuestRequest{Email: "juan@example.com"},
			expectedCode:  http.StatusBadRequest,
			expectedError: wizard.MessageRequiredFields,
			expectedState: wizard.StateCollectingGuest,
		},
		{
			name:          "malformed email",
			session:       selected(),
			req:           dto.GuestRequest{Name: "Juan", Email: "juan-at-example"},
			expectedCode:  http.StatusBadRequest,
			expectedError: wizard.MessageInvalidEmail,
			expectedState: wizard.StateCollectingGuest,
		},
		{
			name:         "no open form",
			session:      sessionModel.New("abc", time.Now()),
			req:          dto.GuestRequest{Name: "Juan", Email: "juan@example.com"},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, f := newService(ctrl)
			f.withSession(tt.session)

			_, err := svc.SubmitGuest(context.Background(), "abc", tt.req)

			if tt.expectedCode != 0 {
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
			}

			if tt.expectedState != "" {
				assert.Equal(t, tt.expectedState, f.stored.Selection.State)
				assert.Equal(t, tt.expectedError, f.stored.Selection.Error)
			}
		})
	}
}

func TestBookingService_Back(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, f := newService(ctrl)
	f.withSession(onStayStep())

	_, err := svc.Back(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, wizard.StateCollectingGuest, f.stored.Selection.State)
	assert.Equal(t, "Juan Dela Cruz", f.stored.Selection.Guest.Name)

	_, err = svc.Back(context.Background(), "abc")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_SubmitStay(t *testing.T) {
	stayReq := dto.StayRequest{CheckIn: "2026-12-01", CheckOut: "2026-12-03", Guests: 2}

	t.Run("confirms and stores the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, f := newService(ctrl)
		f.withSession(onStayStep())

		gomock.InOrder(
			f.remote.EXPECT().
				CreateGuest(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, guest model.Guest) (model.Guest, error) {
					guest.ID = "G-1"

					return guest, nil
				}),
			f.remote.EXPECT().
				CreateBooking(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
					assert.Equal(t, "G-1", booking.GuestID)
					assert.Equal(t, 7, booking.RoomID)

					booking.ID = "B-9"

					return booking, nil
				}),
		)
		f.rooms.EXPECT().Invalidate(gomock.Any())

		summary, err := svc.SubmitStay(context.Background(), "abc", stayReq)

		require.NoError(t, err)
		assert.Equal(t, "B-9", summary.Reference)
		assert.Equal(t, 2, summary.Nights)
		assert.Equal(t, "₱3,000", summary.TotalDisplay)
		assert.Nil(t, f.stored.Selection)
		require.NotNil(t, f.stored.Confirmation)
		assert.Equal(t, "G-1", f.stored.Confirmation.Guest.ID)
	})

	t.Run("guest failure never creates a booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, f := newService(ctrl)
		f.withSession(onStayStep())

		f.remote.EXPECT().
			CreateGuest(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, &innflow.Error{Op: innflow.OpCreateGuest, Status: http.StatusInternalServerError, Reason: innflow.ReasonCreateGuest})
		f.remote.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.SubmitStay(context.Background(), "abc", stayReq)

		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		assert.EqualError(t, err, innflow.ReasonCreateGuest)
		assert.Equal(t, wizard.StateCollectingStay, f.stored.Selection.State)
		assert.Equal(t, innflow.ReasonCreateGuest, f.stored.Selection.Error)
		assert.Equal(t, wizard.StateFailed, f.stored.Selection.Outcome)
		assert.Nil(t, f.stored.Confirmation)
	})

	t.Run("checkout before checkin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, f := newService(ctrl)
		f.withSession(onStayStep())

		_, err := svc.SubmitStay(context.Background(), "abc", dto.StayRequest{CheckIn: "2026-12-03", CheckOut: "2026-12-01"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, wizard.MessageInvalidRange, f.stored.Selection.Error)
	})

	t.Run("month first dates keep a format message on the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, f := newService(ctrl)
		f.withSession(onStayStep())

		_, err := svc.SubmitStay(context.Background(), "abc", dto.StayRequest{CheckIn: "06/01/2025", CheckOut: "06/03/2025"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, wizard.MessageInvalidDate)
		assert.Equal(t, wizard.MessageInvalidDate, f.stored.Selection.Error)
		assert.Equal(t, wizard.StateCollectingStay, f.stored.Selection.State)
	})

	t.Run("still on the guest step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, f := newService(ctrl)
		f.withSession(selected())

		_, err := svc.SubmitStay(context.Background(), "abc", stayReq)

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_Quote(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.QuoteRequest
		setupMock     func(rooms *roomMocks.MockRoom)
		expectedTotal string
		expectedCode  int
	}{
		{
			name: "two nights",
			req:  dto.QuoteRequest{RoomID: 7, CheckIn: "2026-12-01", CheckOut: "2026-12-03"},
			setupMock: func(rooms *roomMocks.MockRoom) {
				rooms.EXPECT().Find(gomock.Any(), 7).Return(room(), nil)
			},
			expectedTotal: "₱3,000",
		},
		{
			name: "missing dates price nothing",
			req:  dto.QuoteRequest{RoomID: 7},
			setupMock: func(rooms *roomMocks.MockRoom) {
				rooms.EXPECT().Find(gomock.Any(), 7).Return(room(), nil)
			},
			expectedTotal: "₱0",
		},
		{
			name: "unknown room",
			req:  dto.QuoteRequest{RoomID: 404},
			setupMock: func(rooms *roomMocks.MockRoom) {
				rooms.EXPECT().Find(gomock.Any(), 404).Return(roomModel.Room{}, failure.NotFound("room not found"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, f := newService(ctrl)
			tt.setupMock(f.rooms)

			res, err := svc.Quote(context.Background(), tt.req)

			if tt.expectedCode != 0 {
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 7, res.RoomID)
			assert.Equal(t, tt.expectedTotal, res.TotalDisplay)
		})
	}
}
