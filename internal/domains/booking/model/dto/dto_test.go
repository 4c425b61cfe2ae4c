package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"innflow/internal/domains/booking/model/dto"
	"innflow/internal/domains/booking/wizard"
	roomModel "innflow/internal/domains/room/model"
	"innflow/shared/failure"
	"innflow/shared/money"
	"innflow/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expected     dto.QuoteRequest
		expectedCode int
	}{
		{
			name:     "full query",
			query:    "room_id=301&check_in=2025-06-01&check_out=2025-06-03",
			expected: dto.QuoteRequest{RoomID: 301, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
		},
		{
			name:     "dates optional",
			query:    "room_id=101",
			expected: dto.QuoteRequest{RoomID: 101},
		},
		{
			name:         "missing room",
			query:        "check_in=2025-06-01",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.QuoteRequest{}
			err := req.FromRequest(httptest.NewRequest("GET", "/v1/quote?"+tt.query, nil))

			if tt.expectedCode != 0 {
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestQuoteRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.QuoteRequest
		wantMsg string
	}{
		{name: "plain dates", req: dto.QuoteRequest{RoomID: 7, CheckIn: "2025-06-01", CheckOut: "2025-06-03"}},
		{name: "timestamps", req: dto.QuoteRequest{RoomID: 7, CheckIn: "2025-06-01T14:00:00Z", CheckOut: "2025-06-03T12:00"}},
		{name: "no dates", req: dto.QuoteRequest{RoomID: 7}},
		{
			name:    "month first check-in",
			req:     dto.QuoteRequest{RoomID: 7, CheckIn: "06/01/2025", CheckOut: "2025-06-03"},
			wantMsg: "check_in must be a date in YYYY-MM-DD format",
		},
		{
			name:    "impossible check-out",
			req:     dto.QuoteRequest{RoomID: 7, CheckIn: "2025-06-01", CheckOut: "2025-02-30"},
			wantMsg: "check_out must be a date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestWizardResponse_FromWizard(t *testing.T) {
	formatter := money.New("₱")
	room, _ := roomModel.Find(roomModel.Fixture(), 305)

	wiz := wizard.New(room)

	res := dto.WizardResponse{}
	res.FromWizard(wiz, formatter)

	assert.Equal(t, "collecting_guest", res.State)
	assert.Equal(t, dto.StepGuest, res.Step)
	assert.Equal(t, 2, res.Stay.MaxGuests)
	assert.Nil(t, res.Quote)

	require.NoError(t, wiz.SubmitGuest("Pedro Rodriguez", "pedro@example.com", ""))
	wiz.Stay.CheckIn = "2025-06-01"
	wiz.Stay.CheckOut = "2025-06-03"

	res = dto.WizardResponse{}
	res.FromWizard(wiz, formatter)

	assert.Equal(t, dto.StepStay, res.Step)
	assert.Equal(t, "Pedro Rodriguez", res.Guest.Name)
	require.NotNil(t, res.Quote)
	assert.Equal(t, 2, res.Quote.Nights)
	assert.Equal(t, "₱3,000", res.Quote.TotalDisplay)
	assert.Equal(t, "₱1,500", res.Quote.RateDisplay)
	assert.Empty(t, res.Outcome)

	wiz.Outcome = wizard.StateFailed
	wiz.Error = "Failed to create guest"

	res = dto.WizardResponse{}
	res.FromWizard(wiz, formatter)

	assert.Equal(t, "failed", res.Outcome)
	assert.Equal(t, "collecting_stay", res.State)
	assert.Equal(t, "Failed to create guest", res.Error)
}
