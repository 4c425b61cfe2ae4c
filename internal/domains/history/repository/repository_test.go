package repository_test

import (
	"context"
	"errors"
	"testing"

	"innflow/infras/innflow"
	innflowMocks "innflow/infras/innflow/mocks"
	otelMocks "innflow/infras/otel/mocks"
	"innflow/internal/domains/history/model"
	"innflow/internal/domains/history/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRepository_MyBookings(t *testing.T) {
	t.Run("maps remote records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := innflowMocks.NewMockClient(ctrl)
		client.EXPECT().MyBookings(gomock.Any(), "token-1").Return([]innflow.HistoryRecord{
			{
				ID:           "65f0c2",
				Hotel:        innflow.Hotel{Name: "InnFlow Makati", Location: "Makati City"},
				RoomType:     "Suite Premier",
				CheckInDate:  "2026-05-01T00:00:00.000Z",
				CheckOutDate: "2026-05-04T00:00:00.000Z",
				TotalPrice:   decimal.NewFromInt(27000),
				Status:       "Confirmed",
			},
		}, nil)

		records, err := repository.New(client, otelMocks.NewOtel()).MyBookings(context.Background(), "token-1")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "65f0c2", records[0].ID)
		assert.Equal(t, "Makati City", records[0].Hotel.Location)
		assert.Equal(t, model.StatusConfirmed, records[0].Status)
		assert.True(t, decimal.NewFromInt(27000).Equal(records[0].TotalPrice))
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := innflowMocks.NewMockClient(ctrl)
		client.EXPECT().MyBookings(gomock.Any(), "token-1").Return(nil, errors.New("connection reset"))

		_, err := repository.New(client, otelMocks.NewOtel()).MyBookings(context.Background(), "token-1")

		assert.ErrorContains(t, err, "failed to get bookings")
	})
}
