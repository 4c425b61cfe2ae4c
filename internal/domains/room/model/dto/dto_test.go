package dto_test

import (
	"net/http/httptest"
	"testing"

	"innflow/internal/domains/room/model"
	"innflow/internal/domains/room/model/dto"
	"innflow/shared/failure"
	"innflow/shared/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRoomsRequest_FromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/rooms?category=Deluxe+Solo&page=2&limit=4", nil)

	list := dto.ListRoomsRequest{}
	require.NoError(t, list.FromRequest(req))

	assert.Equal(t, "Deluxe Solo", list.Category)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 4, list.Limit)

	bad := dto.ListRoomsRequest{}
	assert.ErrorIs(t, bad.FromRequest(httptest.NewRequest("GET", "/v1/rooms?limit=x", nil)), failure.InvalidLimitParam)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	formatter := money.New("₱")
	rooms := model.Filter(model.Fixture(), model.CategoryDeluxeSolo)

	tests := []struct {
		name          string
		req           dto.ListRoomsRequest
		expectedCount int
		expectedFirst int
		paginated     bool
	}{
		{
			name:          "all rooms of the category",
			req:           dto.ListRoomsRequest{Category: "Deluxe Solo"},
			expectedCount: 10,
			expectedFirst: 201,
		},
		{
			name: "second page",
			req: func() dto.ListRoomsRequest {
				r := dto.ListRoomsRequest{Category: "Deluxe Solo"}
				r.Page = 2
				r.Limit = 4

				return r
			}(),
			expectedCount: 4,
			expectedFirst: 205,
			paginated:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := dto.GetRoomsResponse{}
			res.FromModels(rooms, tt.req, formatter)

			require.Len(t, res.Rooms, tt.expectedCount)
			assert.Equal(t, tt.expectedFirst, res.Rooms[0].ID)
			assert.Equal(t, 10, res.TotalData)
			assert.Equal(t, "Deluxe Solo", res.Category)
			assert.Equal(t, "₱1,000", res.Rooms[0].PriceDisplay)

			if tt.paginated {
				require.NotNil(t, res.Pagination)
				assert.Equal(t, 3, res.Pagination.TotalPage)
			} else {
				assert.Nil(t, res.Pagination)
			}
		})
	}
}

func TestGroupResponse_FromModel(t *testing.T) {
	groups := model.GroupByCategory(model.Fixture())

	res := dto.GroupResponse{}
	res.FromModel(groups[4], money.New("₱"))

	assert.Equal(t, "Suite Premier", res.Category)
	assert.Equal(t, "₱8,000", res.StartingAtDisplay)
	assert.Equal(t, 5, res.Available)
	assert.Len(t, res.Rooms, 5)
}
