package model

import (
	roomModel "innflow/internal/domains/room/model"
)

const (
	EntityName = "booking"
)

type Guest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Booking is a stay request for one room. Dates are YYYY-MM-DD.
type Booking struct {
	ID       string `json:"id,omitempty"`
	GuestID  string `json:"guest_id,omitempty"`
	RoomID   int    `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests,omitempty"`
}

// Bundle is everything the confirmation view needs after a successful booking.
type Bundle struct {
	Booking Booking        `json:"booking"`
	Guest   Guest          `json:"guest"`
	Room    roomModel.Room `json:"room"`
}
