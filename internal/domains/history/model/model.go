package model

import (
	"github.com/shopspring/decimal"
)

const (
	EntityName = "history"
)

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusCanceled  Status = "Canceled"
	StatusCompleted Status = "Completed"
)

func (s Status) Known() bool {
	switch s {
	case StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

type Hotel struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Record is one past or upcoming stay of the signed-in guest. Dates are kept as
// the backend sent them.
type Record struct {
	ID           string          `json:"id"`
	Hotel        Hotel           `json:"hotel"`
	RoomType     string          `json:"room_type"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       Status          `json:"status"`
}
