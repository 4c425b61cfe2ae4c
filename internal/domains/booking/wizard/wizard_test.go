package wizard_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"innflow/infras/innflow"
	"innflow/internal/domains/booking/model"
	"innflow/internal/domains/booking/wizard"
	"innflow/internal/domains/booking/wizard/mocks"
	roomModel "innflow/internal/domains/room/model"
	"innflow/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func deluxeDouble() roomModel.Room {
	return roomModel.Room{
		ID:         301,
		RoomNumber: "301",
		Name:       "Deluxe Double Room 301",
		Category:   roomModel.CategoryDeluxeDouble,
		Capacity:   2,
		Price:      decimal.NewFromInt(1500),
		Available:  true,
	}
}

func atStayStep(t *testing.T) *wizard.Wizard {
	t.Helper()

	w := wizard.New(deluxeDouble())
	require.NoError(t, w.SubmitGuest("Maria Santos", "maria@example.com", "+63 912 345 6789"))

	return w
}

func TestNew(t *testing.T) {
	w := wizard.New(deluxeDouble())

	assert.Equal(t, wizard.StateCollectingGuest, w.State)
	assert.Equal(t, 301, w.Stay.RoomID)
	assert.Equal(t, 1, w.Stay.Guests)
	assert.False(t, w.Closed())
}

func TestWizard_SubmitGuest(t *testing.T) {
	tests := []struct {
		name          string
		guestName     string
		email         string
		expectedState wizard.State
		expectedError string
	}{
		{
			name:          "valid guest",
			guestName:     "Juan Dela Cruz",
			email:         "juan.delacruz@email.com",
			expectedState: wizard.StateCollectingStay,
		},
		{
			name:          "missing name",
			guestName:     "",
			email:         "juan.delacruz@email.com",
			expectedState: wizard.StateCollectingGuest,
			expectedError: wizard.MessageRequiredFields,
		},
		{
			name:          "whitespace name",
			guestName:     "   ",
			email:         "juan.delacruz@email.com",
			expectedState: wizard.StateCollectingGuest,
			expectedError: wizard.MessageRequiredFields,
		},
		{
			name:          "missing email",
			guestName:     "Juan Dela Cruz",
			email:         "",
			expectedState: wizard.StateCollectingGuest,
			expectedError: wizard.MessageRequiredFields,
		},
		{
			name:          "malformed email",
			guestName:     "Juan Dela Cruz",
			email:         "juan-at-email",
			expectedState: wizard.StateCollectingGuest,
			expectedError: wizard.MessageInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wizard.New(deluxeDouble())

			err := w.SubmitGuest(tt.guestName, tt.email, "")

			assert.Equal(t, tt.expectedState, w.State)
			assert.Equal(t, tt.expectedError, w.Error)

			if tt.expectedError == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.expectedError)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestWizard_Back(t *testing.T) {
	w := atStayStep(t)

	require.NoError(t, w.Back())

	assert.Equal(t, wizard.StateCollectingGuest, w.State)
	assert.Equal(t, "Maria Santos", w.Guest.Name)
	assert.Equal(t, "maria@example.com", w.Guest.Email)

	err := w.Back()
	assert.ErrorIs(t, err, wizard.ErrWrongStep)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestWizard_SubmitStay_Validation(t *testing.T) {
	tests := []struct {
		name          string
		input         wizard.StayInput
		expectedError string
	}{
		{
			name:          "missing check-in",
			input:         wizard.StayInput{CheckOut: "2025-06-03", Guests: 1},
			expectedError: wizard.MessageMissingDates,
		},
		{
			name:          "missing check-out",
			input:         wizard.StayInput{CheckIn: "2025-06-01", Guests: 1},
			expectedError: wizard.MessageMissingDates,
		},
		{
			name:          "month first dates",
			input:         wizard.StayInput{CheckIn: "06/01/2025", CheckOut: "06/03/2025", Guests: 1},
			expectedError: wizard.MessageInvalidDate,
		},
		{
			name:          "impossible check-out",
			input:         wizard.StayInput{CheckIn: "2025-06-01", CheckOut: "2025-06-31", Guests: 1},
			expectedError: wizard.MessageInvalidDate,
		},
		{
			name:          "reversed dates",
			input:         wizard.StayInput{CheckIn: "2025-06-03", CheckOut: "2025-06-01", Guests: 1},
			expectedError: wizard.MessageInvalidRange,
		},
		{
			name:          "same day",
			input:         wizard.StayInput{CheckIn: "2025-06-01", CheckOut: "2025-06-01", Guests: 1},
			expectedError: wizard.MessageInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			remote := mocks.NewMockRemote(ctrl)
			w := atStayStep(t)

			_, err := w.SubmitStay(context.Background(), remote, tt.input)

			assert.EqualError(t, err, tt.expectedError)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, wizard.StateCollectingStay, w.State)
			assert.Equal(t, tt.expectedError, w.Error)
		})
	}
}

func TestWizard_SubmitStay_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mocks.NewMockRemote(ctrl)
	w := atStayStep(t)

	gomock.InOrder(
		remote.EXPECT().
			CreateGuest(gomock.Any(), model.Guest{Name: "Maria Santos", Email: "maria@example.com", Phone: "+63 912 345 6789"}).
			Return(model.Guest{ID: "17", Name: "Maria Santos", Email: "maria@example.com"}, nil),
		remote.EXPECT().
			CreateBooking(gomock.Any(), model.Booking{GuestID: "17", RoomID: 301, CheckIn: "2025-06-01", CheckOut: "2025-06-03", Guests: 2}).
			Return(model.Booking{ID: "99", GuestID: "17", RoomID: 301}, nil),
	)

	bundle, err := w.SubmitStay(context.Background(), remote, wizard.StayInput{CheckIn: "2025-06-01", CheckOut: "2025-06-03", Guests: 2})

	require.NoError(t, err)
	assert.Equal(t, wizard.StateSucceeded, w.State)
	assert.True(t, w.Closed())
	assert.Empty(t, w.Error)

	assert.Equal(t, "99", bundle.Booking.ID)
	assert.Equal(t, "2025-06-01", bundle.Booking.CheckIn)
	assert.Equal(t, "2025-06-03", bundle.Booking.CheckOut)
	assert.Equal(t, 2, bundle.Booking.Guests)
	assert.Equal(t, "+63 912 345 6789", bundle.Guest.Phone)
	assert.Equal(t, 301, bundle.Room.ID)

	quote := w.Quote()
	assert.Equal(t, 2, quote.Nights)
	assert.True(t, decimal.NewFromInt(3000).Equal(quote.Total))

	_, err = w.SubmitStay(context.Background(), remote, wizard.StayInput{CheckIn: "2025-06-01", CheckOut: "2025-06-03"})
	assert.ErrorIs(t, err, wizard.ErrClosed)
	assert.ErrorIs(t, w.Back(), wizard.ErrClosed)
	assert.ErrorIs(t, w.SubmitGuest("Ana Garcia", "ana@example.com", ""), wizard.ErrClosed)
}

func TestWizard_SubmitStay_ClampsGuests(t *testing.T) {
	tests := []struct {
		name     string
		guests   int
		expected int
	}{
		{name: "zero becomes one", guests: 0, expected: 1},
		{name: "negative becomes one", guests: -4, expected: 1},
		{name: "within capacity", guests: 2, expected: 2},
		{name: "above capacity", guests: 7, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			remote := mocks.NewMockRemote(ctrl)
			w := atStayStep(t)

			remote.EXPECT().CreateGuest(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "5"}, nil)
			remote.EXPECT().
				CreateBooking(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
					assert.Equal(t, tt.expected, booking.Guests)

					return model.Booking{ID: "1"}, nil
				})

			_, err := w.SubmitStay(context.Background(), remote, wizard.StayInput{CheckIn: "2025-06-01", CheckOut: "2025-06-02", Guests: tt.guests})

			require.NoError(t, err)
		})
	}
}

func TestWizard_SubmitStay_RemoteFailures(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(remote *mocks.MockRemote)
		expectedError string
	}{
		{
			name: "guest creation rejected",
			setupMock: func(remote *mocks.MockRemote) {
				remote.EXPECT().
					CreateGuest(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, fmt.Errorf("failed to create guest: %w", &innflow.Error{
						Op:     innflow.OpCreateGuest,
						Status: http.StatusInternalServerError,
						Reason: innflow.ReasonCreateGuest,
					}))
				remote.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedError: "Failed to create guest",
		},
		{
			name: "guest created without id",
			setupMock: func(remote *mocks.MockRemote) {
				remote.EXPECT().CreateGuest(gomock.Any(), gomock.Any()).Return(model.Guest{Name: "Maria Santos"}, nil)
				remote.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedError: "Failed to create guest",
		},
		{
			name: "network failure without message",
			setupMock: func(remote *mocks.MockRemote) {
				remote.EXPECT().
					CreateGuest(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, &innflow.Error{Op: innflow.OpCreateGuest, Cause: errors.New("connection reset")})
				remote.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedError: wizard.MessageDefaultFailure,
		},
		{
			name: "booking creation rejected",
			setupMock: func(remote *mocks.MockRemote) {
				remote.EXPECT().CreateGuest(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "17"}, nil)
				remote.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, &innflow.Error{
						Op:     innflow.OpCreateBooking,
						Status: http.StatusBadRequest,
						Reason: innflow.ReasonCreateBooking,
					})
			},
			expectedError: "Failed to create booking",
		},
		{
			name: "plain error",
			setupMock: func(remote *mocks.MockRemote) {
				remote.EXPECT().CreateGuest(gomock.Any(), gomock.Any()).Return(model.Guest{}, errors.New("boom"))
			},
			expectedError: wizard.MessageDefaultFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			remote := mocks.NewMockRemote(ctrl)
			tt.setupMock(remote)

			w := atStayStep(t)

			bundle, err := w.SubmitStay(context.Background(), remote, wizard.StayInput{CheckIn: "2025-06-01", CheckOut: "2025-06-03", Guests: 1})

			assert.EqualError(t, err, tt.expectedError)
			assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
			assert.Equal(t, model.Bundle{}, bundle)
			assert.Equal(t, wizard.StateCollectingStay, w.State)
			assert.Equal(t, tt.expectedError, w.Error)
			assert.Equal(t, wizard.StateFailed, w.Outcome)
			assert.False(t, w.Closed())
		})
	}
}

func TestWizard_RetryAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mocks.NewMockRemote(ctrl)
	w := atStayStep(t)
	input := wizard.StayInput{CheckIn: "2025-06-01", CheckOut: "2025-06-03", Guests: 1}

	gomock.InOrder(
		remote.EXPECT().CreateGuest(gomock.Any(), gomock.Any()).Return(model.Guest{}, errors.New("timeout")),
		remote.EXPECT().CreateGuest(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "18"}, nil),
		remote.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "100"}, nil),
	)

	_, err := w.SubmitStay(context.Background(), remote, input)
	require.Error(t, err)
	assert.Equal(t, wizard.StateFailed, w.Outcome)

	bundle, err := w.SubmitStay(context.Background(), remote, input)
	require.NoError(t, err)
	assert.Equal(t, "18", bundle.Booking.GuestID)
	assert.Empty(t, w.Error)
	assert.Empty(t, w.Outcome)
}

func TestWizard_Snapshot(t *testing.T) {
	w := atStayStep(t)
	w.Stay.CheckIn = "2025-06-01"

	data, err := json.Marshal(w)
	require.NoError(t, err)

	restored := &wizard.Wizard{}
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, w.State, restored.State)
	assert.Equal(t, w.Guest, restored.Guest)
	assert.Equal(t, w.Stay, restored.Stay)
	assert.True(t, w.Room.Price.Equal(restored.Room.Price))
	assert.NoError(t, restored.Back())
}
