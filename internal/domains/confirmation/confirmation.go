// Package confirmation turns a completed booking into the summary shown to the guest.
package confirmation

import (
	"fmt"
	"strings"

	"innflow/internal/domains/booking/model"
	"innflow/internal/domains/stay"
	"innflow/shared/constant"
	"innflow/shared/money"

	"github.com/shopspring/decimal"
)

const (
	Headline = "Booking Confirmed!"
	Greeting = "Salamat po sa pag-book with InnFlow!"
	Notice   = "Please present this booking reference at the front desk during check-in. For inquiries, call +63 2 1234 5678."
)

type Summary struct {
	Reference    string          `json:"reference,omitempty"`
	RoomName     string          `json:"room_name"`
	RoomNumber   string          `json:"room_number"`
	Category     string          `json:"category"`
	GuestName    string          `json:"guest_name"`
	GuestEmail   string          `json:"guest_email"`
	GuestPhone   string          `json:"guest_phone,omitempty"`
	Guests       int             `json:"guests,omitempty"`
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	Nights       int             `json:"nights"`
	Rate         decimal.Decimal `json:"rate"`
	RateDisplay  string          `json:"rate_display"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
	Message      string          `json:"message"`
	Notice       string          `json:"notice"`
}

type Renderer struct {
	formatter money.Formatter
}

func New(formatter money.Formatter) Renderer {
	return Renderer{formatter: formatter}
}

// Render builds the summary. Total is the room rate times the nights between
// the booked dates.
func (r Renderer) Render(bundle model.Bundle) Summary {
	nights := stay.NightsBetween(bundle.Booking.CheckIn, bundle.Booking.CheckOut)
	rate := bundle.Room.Price
	total := stay.TotalPrice(rate, nights)

	message := Greeting
	if bundle.Guest.Email != "" {
		message += " Your booking has been confirmed. A confirmation email has been sent to " + bundle.Guest.Email
	}

	return Summary{
		Reference:    bundle.Booking.ID,
		RoomName:     bundle.Room.Name,
		RoomNumber:   bundle.Room.RoomNumber,
		Category:     string(bundle.Room.Category),
		GuestName:    bundle.Guest.Name,
		GuestEmail:   bundle.Guest.Email,
		GuestPhone:   bundle.Guest.Phone,
		Guests:       bundle.Booking.Guests,
		CheckIn:      longDate(bundle.Booking.CheckIn),
		CheckOut:     longDate(bundle.Booking.CheckOut),
		CheckInDate:  bundle.Booking.CheckIn,
		CheckOutDate: bundle.Booking.CheckOut,
		Nights:       nights,
		Rate:         rate,
		RateDisplay:  r.formatter.Format(rate),
		Total:        total,
		TotalDisplay: r.formatter.Format(total),
		Message:      message,
		Notice:       Notice,
	}
}

// Text renders the summary as a plain text receipt.
func (s Summary) Text() string {
	var b strings.Builder

	fmt.Fprintln(&b, Headline)
	fmt.Fprintln(&b, Greeting)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Room:      Room %s (%s)\n", s.RoomNumber, s.Category)
	fmt.Fprintf(&b, "Guest:     %s\n", s.GuestName)
	fmt.Fprintf(&b, "Email:     %s\n", s.GuestEmail)

	if s.GuestPhone != "" {
		fmt.Fprintf(&b, "Phone:     %s\n", s.GuestPhone)
	}

	fmt.Fprintf(&b, "Check-in:  %s\n", s.CheckIn)
	fmt.Fprintf(&b, "Check-out: %s\n", s.CheckOut)

	if s.Reference != "" {
		fmt.Fprintf(&b, "Reference: #%s\n", s.Reference)
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Price per night:  %s\n", s.RateDisplay)
	fmt.Fprintf(&b, "Number of nights: %d\n", s.Nights)
	fmt.Fprintf(&b, "Total Amount:     %s\n", s.TotalDisplay)
	fmt.Fprintln(&b)
	fmt.Fprint(&b, s.Notice)

	return b.String()
}

func longDate(value string) string {
	date, ok := stay.ParseDate(value)
	if !ok {
		return value
	}

	return date.Format(constant.LongDateFormat)
}
