package dto

import (
	"net/http"

	"innflow/internal/domains/booking/wizard"
	roomDto "innflow/internal/domains/room/model/dto"
	"innflow/internal/domains/stay"
	"innflow/shared"
	"innflow/shared/constant"
	"innflow/shared/failure"
	"innflow/shared/money"

	"github.com/shopspring/decimal"
)

const (
	StepGuest = 1
	StepStay  = 2
)

// GuestRequest is step one of the booking form. Required fields are checked by
// the wizard so it can answer with the form's own messages.
type GuestRequest struct {
	Name  string `json:"name"  validate:"max=100"`
	Email string `json:"email" validate:"max=254"`
	Phone string `json:"phone" validate:"max=30"`
}

// StayRequest is step two of the booking form. Dates are checked by the wizard
// so a bad date is kept on the form as well as returned.
type StayRequest struct {
	CheckIn  string `json:"check_in"  validate:"max=32"`
	CheckOut string `json:"check_out" validate:"max=32"`
	Guests   int    `json:"guests"`
}

func (s StayRequest) ToInput() wizard.StayInput {
	return wizard.StayInput{
		CheckIn:  s.CheckIn,
		CheckOut: s.CheckOut,
		Guests:   s.Guests,
	}
}

type QuoteRequest struct {
	RoomID   int    `json:"room_id"   validate:"required,min=1"`
	CheckIn  string `json:"check_in"  validate:"omitempty,max=32,date"`
	CheckOut string `json:"check_out" validate:"omitempty,max=32,date"`
}

func (q *QuoteRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	roomID, ok := shared.ConvertStringToInt(query.Get(constant.RequestParamRoomID))
	if !ok {
		return failure.BadRequestFromString("room_id is required") // nolint:wrapcheck
	}

	q.RoomID = roomID
	q.CheckIn = query.Get(constant.RequestParamCheckIn)
	q.CheckOut = query.Get(constant.RequestParamCheckOut)

	return nil
}

type QuoteResponse struct {
	RoomID       int             `json:"room_id"`
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	Nights       int             `json:"nights"`
	Rate         decimal.Decimal `json:"rate"`
	RateDisplay  string          `json:"rate_display"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

func (q *QuoteResponse) FromQuote(roomID int, quote stay.Quote, formatter money.Formatter) {
	q.RoomID = roomID
	q.CheckIn = quote.CheckIn
	q.CheckOut = quote.CheckOut
	q.Nights = quote.Nights
	q.Rate = quote.Rate
	q.RateDisplay = formatter.Format(quote.Rate)
	q.Total = quote.Total
	q.TotalDisplay = formatter.Format(quote.Total)
}

type GuestResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type StayResponse struct {
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Guests    int    `json:"guests"`
	MaxGuests int    `json:"max_guests"`
}

type WizardResponse struct {
	State   string               `json:"state"`
	Outcome string               `json:"outcome,omitempty"`
	Step    int                  `json:"step"`
	Room    roomDto.RoomResponse `json:"room"`
	Guest   GuestResponse        `json:"guest"`
	Stay    StayResponse         `json:"stay"`
	Quote   *QuoteResponse       `json:"quote,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// FromWizard describes the form. The quote is only included once it covers at
// least one night.
func (w *WizardResponse) FromWizard(wiz *wizard.Wizard, formatter money.Formatter) {
	w.State = string(wiz.State)
	w.Outcome = string(wiz.Outcome)
	w.Step = StepStay

	if wiz.State == wizard.StateCollectingGuest {
		w.Step = StepGuest
	}

	w.Room.FromModel(wiz.Room, formatter)
	w.Guest = GuestResponse{
		Name:  wiz.Guest.Name,
		Email: wiz.Guest.Email,
		Phone: wiz.Guest.Phone,
	}
	w.Stay = StayResponse{
		CheckIn:   wiz.Stay.CheckIn,
		CheckOut:  wiz.Stay.CheckOut,
		Guests:    wiz.Stay.Guests,
		MaxGuests: wiz.Room.MaxGuests(),
	}
	w.Error = wiz.Error

	if quote := wiz.Quote(); quote.Nights > 0 {
		w.Quote = &QuoteResponse{}
		w.Quote.FromQuote(wiz.Room.ID, quote, formatter)
	}
}
