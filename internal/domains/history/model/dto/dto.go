package dto

import (
	"innflow/internal/domains/history/model"
	"innflow/shared/money"

	"github.com/shopspring/decimal"
)

const MessageEmpty = "You have no active or past bookings to review."

type HotelResponse struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type RecordResponse struct {
	ID           string          `json:"id"`
	Hotel        HotelResponse   `json:"hotel"`
	RoomType     string          `json:"room_type"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	TotalDisplay string          `json:"total_display"`
	Status       string          `json:"status"`
}

func (r *RecordResponse) FromModel(m model.Record, formatter money.Formatter) {
	r.ID = m.ID
	r.Hotel = HotelResponse{
		Name:     m.Hotel.Name,
		Location: m.Hotel.Location,
	}
	r.RoomType = m.RoomType
	r.CheckInDate = m.CheckInDate
	r.CheckOutDate = m.CheckOutDate
	r.TotalPrice = m.TotalPrice
	r.TotalDisplay = formatter.Format(m.TotalPrice)
	r.Status = string(m.Status)
}

// MyBookingsResponse always carries a list. Message is set when it is empty.
type MyBookingsResponse struct {
	Bookings  []RecordResponse `json:"bookings"`
	TotalData int              `json:"total_data"`
	Message   string           `json:"message,omitempty"`
}

func (r *MyBookingsResponse) FromModels(models []model.Record, formatter money.Formatter) {
	r.Bookings = make([]RecordResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m, formatter)
	}

	r.TotalData = len(models)

	if r.TotalData == 0 {
		r.Message = MessageEmpty
	}
}
