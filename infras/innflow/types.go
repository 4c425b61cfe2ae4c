package innflow

import "github.com/shopspring/decimal"

type Guest struct {
	ID    ID     `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Booking struct {
	ID       ID     `json:"id,omitempty"`
	GuestID  ID     `json:"guestId"`
	RoomID   int    `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests,omitempty"`
}

type Room struct {
	ID          ID              `json:"id"`
	RoomNumber  string          `json:"roomNumber"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Capacity    int             `json:"capacity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Amenities   []string        `json:"amenities"`
	Available   bool            `json:"available"`
}

type Hotel struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type HistoryRecord struct {
	ID           ID              `json:"_id"`
	Hotel        Hotel           `json:"hotel"`
	RoomType     string          `json:"roomType"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       string          `json:"status"`
}
