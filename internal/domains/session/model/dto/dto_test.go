package dto_test

import (
	"testing"
	"time"

	bookingModel "innflow/internal/domains/booking/model"
	roomModel "innflow/internal/domains/room/model"
	"innflow/internal/domains/session/model"
	"innflow/internal/domains/session/model/dto"
	"innflow/shared/money"
	"innflow/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func room() roomModel.Room {
	return roomModel.Room{
		ID:       306,
		Name:     "Double Suite 306",
		Category: roomModel.CategoryDoubleSuite,
		Capacity: 4,
		Price:    decimal.NewFromInt(5000),
	}
}

func TestSessionResponse_FromModel(t *testing.T) {
	formatter := money.New("₱")
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	t.Run("fresh session", func(t *testing.T) {
		var res dto.SessionResponse

		res.FromModel(model.New("abc", at), formatter)

		assert.Equal(t, "abc", res.ID)
		assert.Equal(t, "home", res.Page)
		assert.Nil(t, res.Selection)
		assert.Nil(t, res.Confirmation)
		assert.Equal(t, "guest", res.CreatedBy)
	})

	t.Run("open form", func(t *testing.T) {
		session := model.New("abc", at)
		session.Select(room())

		var res dto.SessionResponse

		res.FromModel(session, formatter)

		require.NotNil(t, res.Selection)
		assert.Equal(t, 306, res.Selection.Room.ID)
		assert.Equal(t, 4, res.Selection.Stay.MaxGuests)
	})

	t.Run("confirmed booking", func(t *testing.T) {
		session := model.New("abc", at)
		session.Complete(bookingModel.Bundle{
			Booking: bookingModel.Booking{ID: "B-2", RoomID: 306, CheckIn: "2026-12-24", CheckOut: "2026-12-26", Guests: 3},
			Guest:   bookingModel.Guest{ID: "G-2", Name: "Maria", Email: "maria@example.com"},
			Room:    room(),
		})

		var res dto.SessionResponse

		res.FromModel(session, formatter)

		require.NotNil(t, res.Confirmation)
		assert.Equal(t, "₱10,000", res.Confirmation.TotalDisplay)
		assert.Nil(t, res.Selection)
	})
}

func TestRequests_Validation(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&dto.NavigateRequest{Page: "rooms"}))
	assert.Error(t, validator.ValidateStruct(&dto.NavigateRequest{Page: "checkout"}))
	assert.NoError(t, validator.ValidateStruct(&dto.SelectRequest{RoomID: 1}))
	assert.Error(t, validator.ValidateStruct(&dto.SelectRequest{RoomID: -4}))
}
