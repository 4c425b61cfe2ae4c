// Package wizard implements the two step booking form: guest details first,
// then the stay, then the remote guest and booking calls.
package wizard

//go:generate go run go.uber.org/mock/mockgen -source=./wizard.go -destination=./mocks/wizard_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"innflow/internal/domains/booking/model"
	roomModel "innflow/internal/domains/room/model"
	"innflow/internal/domains/stay"
	"innflow/shared/failure"
	"innflow/shared/validator"

	"github.com/rs/zerolog/log"
)

type State string

const (
	StateCollectingGuest State = "collecting_guest"
	StateCollectingStay  State = "collecting_stay"
	StateSubmitting      State = "submitting"
	StateSucceeded       State = "succeeded"
	StateFailed          State = "failed"
)

const (
	MessageRequiredFields = "Please fill in all required fields"
	MessageInvalidEmail   = "Please enter a valid email address"
	MessageMissingDates   = "Please select check-in and check-out dates"
	MessageInvalidDate    = "Please enter dates as YYYY-MM-DD"
	MessageInvalidRange   = "Check-out date must be after check-in date"
	MessageDefaultFailure = "Failed to complete booking. Please try again."
	MessageGuestFailure   = "Failed to create guest"
)

var (
	ErrClosed    = failure.Conflict("booking is already complete")
	ErrWrongStep = failure.Conflict("action not allowed at this step")
)

// Remote creates guests and bookings on the backend.
type Remote interface {
	CreateGuest(ctx context.Context, guest model.Guest) (model.Guest, error)
	CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
}

// StayInput is the second step of the form.
type StayInput struct {
	CheckIn  string
	CheckOut string
	Guests   int
}

// Wizard is a snapshot of one booking form. It is plain data so it can be
// stored between requests. Outcome is StateFailed after a submission the
// backend did not accept and is cleared by the next transition.
type Wizard struct {
	State   State          `json:"state"`
	Outcome State          `json:"outcome,omitempty"`
	Room    roomModel.Room `json:"room"`
	Guest   model.Guest    `json:"guest"`
	Stay    model.Booking  `json:"stay"`
	Error   string         `json:"error,omitempty"`
}

// New opens a wizard for room at the guest step with one guest preselected.
func New(room roomModel.Room) *Wizard {
	return &Wizard{
		State: StateCollectingGuest,
		Room:  room,
		Stay: model.Booking{
			RoomID: room.ID,
			Guests: 1,
		},
	}
}

func (w *Wizard) Closed() bool {
	return w.State == StateSucceeded
}

// SubmitGuest records the guest details and moves to the stay step. Name and
// email are required and the email must be well formed. Nothing is sent yet.
func (w *Wizard) SubmitGuest(name, email, phone string) error {
	if err := w.expect(StateCollectingGuest); err != nil {
		return err
	}

	w.Outcome = ""

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	w.Guest = model.Guest{Name: name, Email: email, Phone: phone}

	if name == "" || email == "" {
		return w.reject(MessageRequiredFields)
	}

	if err := validator.ValidateVar(email, "email"); err != nil {
		return w.reject(MessageInvalidEmail)
	}

	w.Error = ""
	w.State = StateCollectingStay

	return nil
}

// Back returns to the guest step, keeping what was entered.
func (w *Wizard) Back() error {
	if err := w.expect(StateCollectingStay); err != nil {
		return err
	}

	w.Outcome = ""
	w.Error = ""
	w.State = StateCollectingGuest

	return nil
}

// Quote previews the price of the current stay draft.
func (w *Wizard) Quote() stay.Quote {
	return stay.NewQuote(w.Room.Price, w.Stay.CheckIn, w.Stay.CheckOut)
}

// SubmitStay validates the stay, then creates the guest and the booking. The
// booking is only sent once the guest exists and carries the id the backend
// assigned. On failure the wizard stays on the stay step with the error set.
func (w *Wizard) SubmitStay(ctx context.Context, remote Remote, in StayInput) (model.Bundle, error) {
	if err := w.expect(StateCollectingStay); err != nil {
		return model.Bundle{}, err
	}

	w.Outcome = ""
	w.Stay.CheckIn = strings.TrimSpace(in.CheckIn)
	w.Stay.CheckOut = strings.TrimSpace(in.CheckOut)
	w.Stay.Guests = min(max(in.Guests, 1), w.Room.MaxGuests())
	w.Stay.RoomID = w.Room.ID

	if w.Stay.CheckIn == "" || w.Stay.CheckOut == "" {
		return model.Bundle{}, w.reject(MessageMissingDates)
	}

	if _, ok := stay.ParseDate(w.Stay.CheckIn); !ok {
		return model.Bundle{}, w.reject(MessageInvalidDate)
	}

	if _, ok := stay.ParseDate(w.Stay.CheckOut); !ok {
		return model.Bundle{}, w.reject(MessageInvalidDate)
	}

	if stay.NightsBetween(w.Stay.CheckIn, w.Stay.CheckOut) <= 0 {
		return model.Bundle{}, w.reject(MessageInvalidRange)
	}

	w.Error = ""
	w.State = StateSubmitting

	bundle, err := w.submit(ctx, remote)
	if err != nil {
		w.Outcome = StateFailed
		w.State = StateCollectingStay
		w.Error = messageOf(err)

		return model.Bundle{}, failure.BadGateway(w.Error) // nolint:wrapcheck
	}

	w.State = StateSucceeded

	return bundle, nil
}

func (w *Wizard) submit(ctx context.Context, remote Remote) (model.Bundle, error) {
	guest, err := remote.CreateGuest(ctx, w.Guest)
	if err != nil {
		log.Error().Err(err).Int("room_id", w.Room.ID).Msg("failed to create guest")

		return model.Bundle{}, fmt.Errorf("failed to create guest: %w", err)
	}

	if guest.ID == "" {
		log.Error().Int("room_id", w.Room.ID).Msg("guest created without id")

		return model.Bundle{}, &stepError{message: MessageGuestFailure}
	}

	guest = fillGuest(guest, w.Guest)

	draft := w.Stay
	draft.GuestID = guest.ID

	booking, err := remote.CreateBooking(ctx, draft)
	if err != nil {
		// The guest already exists remotely; a retry will create another one.
		log.Warn().Err(err).Str("guest_id", guest.ID).Int("room_id", w.Room.ID).Msg("booking failed after guest was created")

		return model.Bundle{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return model.Bundle{
		Booking: fillBooking(booking, draft),
		Guest:   guest,
		Room:    w.Room,
	}, nil
}

func (w *Wizard) expect(state State) error {
	if w.Closed() {
		return ErrClosed
	}

	if w.State != state {
		return ErrWrongStep
	}

	return nil
}

func (w *Wizard) reject(message string) error {
	w.Error = message

	return failure.BadRequestFromString(message) // nolint:wrapcheck
}

type stepError struct {
	message string
}

func (e *stepError) Error() string {
	return e.message
}

func (e *stepError) Message() string {
	return e.message
}

// messageOf finds the first user-facing message in the error chain.
func messageOf(err error) string {
	var withMessage interface{ Message() string }

	if errors.As(err, &withMessage) && withMessage.Message() != "" {
		return withMessage.Message()
	}

	return MessageDefaultFailure
}

func fillGuest(created, submitted model.Guest) model.Guest {
	if created.Name == "" {
		created.Name = submitted.Name
	}

	if created.Email == "" {
		created.Email = submitted.Email
	}

	if created.Phone == "" {
		created.Phone = submitted.Phone
	}

	return created
}

func fillBooking(created, draft model.Booking) model.Booking {
	if created.GuestID == "" {
		created.GuestID = draft.GuestID
	}

	created.RoomID = draft.RoomID

	if created.CheckIn == "" {
		created.CheckIn = draft.CheckIn
	}

	if created.CheckOut == "" {
		created.CheckOut = draft.CheckOut
	}

	if created.Guests == 0 {
		created.Guests = draft.Guests
	}

	return created
}
