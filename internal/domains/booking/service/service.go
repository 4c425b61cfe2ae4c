package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"innflow/config"
	"innflow/infras/otel"
	"innflow/internal/domains/booking/model/dto"
	"innflow/internal/domains/booking/wizard"
	"innflow/internal/domains/confirmation"
	roomService "innflow/internal/domains/room/service"
	sessionModel "innflow/internal/domains/session/model"
	sessionDto "innflow/internal/domains/session/model/dto"
	sessionService "innflow/internal/domains/session/service"
	"innflow/internal/domains/stay"
	"innflow/shared/constant"
	"innflow/shared/money"
	"innflow/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	SubmitGuest(ctx context.Context, sessionID string, req dto.GuestRequest) (sessionDto.SessionResponse, error)
	Back(ctx context.Context, sessionID string) (sessionDto.SessionResponse, error)
	SubmitStay(ctx context.Context, sessionID string, req dto.StayRequest) (confirmation.Summary, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	remote    wizard.Remote
	sessions  sessionService.Session
	rooms     roomService.Room
	otel      otel.Otel
	formatter money.Formatter
}

func New(remote wizard.Remote, sessions sessionService.Session, rooms roomService.Room, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		remote:    remote,
		sessions:  sessions,
		rooms:     rooms,
		otel:      otel,
		formatter: money.New(cfg.App.Currency),
	}
}

// SubmitGuest records the guest step of the open booking form. Validation
// messages are kept on the form as well as returned.
func (s *serviceImpl) SubmitGuest(ctx context.Context, sessionID string, req dto.GuestRequest) (res sessionDto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SubmitGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	session, err := s.sessions.Mutate(ctx, sessionID, func(session *sessionModel.Session) error {
		wiz, err := session.Wizard()
		if err != nil {
			return err
		}

		return wiz.SubmitGuest(req.Name, req.Email, req.Phone)
	})
	if err != nil {
		return res, err
	}

	return s.sessions.Respond(session), nil
}

func (s *serviceImpl) Back(ctx context.Context, sessionID string) (res sessionDto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Back")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.sessions.Mutate(ctx, sessionID, func(session *sessionModel.Session) error {
		wiz, err := session.Wizard()
		if err != nil {
			return err
		}

		return wiz.Back()
	})
	if err != nil {
		return res, err
	}

	return s.sessions.Respond(session), nil
}

// SubmitStay creates the guest and then the booking upstream. On success the
// form is closed, the session holds the confirmation and the cached room
// listing is dropped since availability changed.
func (s *serviceImpl) SubmitStay(ctx context.Context, sessionID string, req dto.StayRequest) (res confirmation.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SubmitStay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	session, err := s.sessions.Mutate(ctx, sessionID, func(session *sessionModel.Session) error {
		wiz, err := session.Wizard()
		if err != nil {
			return err
		}

		scope.SetAttribute("room.id", wiz.Room.ID)

		bundle, err := wiz.SubmitStay(ctx, s.remote, req.ToInput())
		if err != nil {
			return err
		}

		session.Complete(bundle)

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Str("session_id", sessionID).
		Str("booking_id", session.Confirmation.Booking.ID).
		Int("room_id", session.Confirmation.Booking.RoomID).
		Msg("booking confirmed")

	s.rooms.Invalidate(ctx)

	return confirmation.New(s.formatter).Render(*session.Confirmation), nil
}

// Quote prices a stay without touching any session.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room, err := s.rooms.Find(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	res.FromQuote(room.ID, stay.NewQuote(room.Price, req.CheckIn, req.CheckOut), s.formatter)

	return res, nil
}
