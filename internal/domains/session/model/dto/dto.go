package dto

import (
	bookingDto "innflow/internal/domains/booking/model/dto"
	"innflow/internal/domains/confirmation"
	"innflow/internal/domains/session/model"
	gDto "innflow/shared/dto"
	"innflow/shared/money"
)

type NavigateRequest struct {
	Page string `json:"page" validate:"required,oneof=home rooms bookings"`
}

type SelectRequest struct {
	RoomID int `json:"room_id" validate:"required,min=1"`
}

type SessionResponse struct {
	ID           string                     `json:"id"`
	Page         string                     `json:"page"`
	Selection    *bookingDto.WizardResponse `json:"selection"`
	Confirmation *confirmation.Summary      `json:"confirmation"`
	gDto.Metadata
}

func (s *SessionResponse) FromModel(session model.Session, formatter money.Formatter) {
	s.ID = session.ID
	s.Page = string(session.Page)
	s.Metadata.FromModel(session.Metadata)

	if session.Selection != nil {
		s.Selection = &bookingDto.WizardResponse{}
		s.Selection.FromWizard(session.Selection, formatter)
	}

	if session.Confirmation != nil {
		summary := confirmation.New(formatter).Render(*session.Confirmation)
		s.Confirmation = &summary
	}
}
