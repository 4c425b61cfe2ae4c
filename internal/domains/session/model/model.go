package model

import (
	"time"

	bookingModel "innflow/internal/domains/booking/model"
	"innflow/internal/domains/booking/wizard"
	roomModel "innflow/internal/domains/room/model"
	"innflow/shared/constant"
	"innflow/shared/failure"
	gModel "innflow/shared/model"
)

const (
	EntityName = "session"
)

type Page string

const (
	PageHome     Page = "home"
	PageRooms    Page = "rooms"
	PageBookings Page = "bookings"
)

var (
	ErrNoSelection    = failure.Conflict("no room selected")
	ErrNoConfirmation = failure.NotFound("no booking confirmation")
)

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageRooms, PageBookings:
		return true
	default:
		return false
	}
}

// Session is the state one visitor builds up while browsing: the current page,
// at most one open booking form and the last confirmed booking.
type Session struct {
	ID           string               `json:"id"`
	Page         Page                 `json:"page"`
	Selection    *wizard.Wizard       `json:"selection,omitempty"`
	Confirmation *bookingModel.Bundle `json:"confirmation,omitempty"`
	gModel.Metadata
}

func New(id string, at time.Time) Session {
	return Session{
		ID:       id,
		Page:     PageHome,
		Metadata: gModel.NewMetadata(constant.ContextGuest, at),
	}
}

func (s *Session) Navigate(page Page) error {
	if !page.Valid() {
		return failure.BadRequestFromString("page must be one of home rooms bookings") // nolint:wrapcheck
	}

	s.Page = page

	return nil
}

// Select opens a booking form for room, replacing any form already open.
func (s *Session) Select(room roomModel.Room) *wizard.Wizard {
	s.Selection = wizard.New(room)

	return s.Selection
}

func (s *Session) CloseSelection() {
	s.Selection = nil
}

// Wizard returns the open booking form.
func (s *Session) Wizard() (*wizard.Wizard, error) {
	if s.Selection == nil {
		return nil, ErrNoSelection
	}

	return s.Selection, nil
}

// Complete stores the confirmed booking and closes the form.
func (s *Session) Complete(bundle bookingModel.Bundle) {
	s.Confirmation = &bundle
	s.Selection = nil
}

func (s *Session) DismissConfirmation() {
	s.Confirmation = nil
}
