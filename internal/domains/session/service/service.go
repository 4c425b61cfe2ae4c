package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innflow/config"
	"innflow/infras/otel"
	"innflow/internal/domains/confirmation"
	roomService "innflow/internal/domains/room/service"
	"innflow/internal/domains/session/model"
	"innflow/internal/domains/session/model/dto"
	"innflow/internal/domains/session/repository"
	"innflow/shared/constant"
	"innflow/shared/money"
	"innflow/shared/timezone"
	"innflow/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Session interface {
	Create(ctx context.Context) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	End(ctx context.Context, id string) error
	Navigate(ctx context.Context, id string, req dto.NavigateRequest) (dto.SessionResponse, error)
	Select(ctx context.Context, id string, req dto.SelectRequest) (dto.SessionResponse, error)
	CloseSelection(ctx context.Context, id string) (dto.SessionResponse, error)
	Confirmation(ctx context.Context, id string) (confirmation.Summary, error)
	DismissConfirmation(ctx context.Context, id string) (dto.SessionResponse, error)
	Mutate(ctx context.Context, id string, fn func(session *model.Session) error) (model.Session, error)
	Respond(session model.Session) dto.SessionResponse
}

type serviceImpl struct {
	repo      repository.Session
	rooms     roomService.Room
	cfg       *config.Config
	otel      otel.Otel
	formatter money.Formatter
	locks     *keyedMutex
}

func New(repo repository.Session, rooms roomService.Room, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		cfg:       cfg,
		otel:      otel,
		formatter: money.New(cfg.App.Currency),
		locks:     newKeyedMutex(),
	}
}

func (s *serviceImpl) Create(ctx context.Context) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session := model.New(uuid.NewString(), timezone.Now())

	if err = s.repo.Save(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return res, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().Str("session_id", session.ID).Msg("session created")

	return s.Respond(session), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	return s.Respond(session), nil
}

func (s *serviceImpl) End(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.End")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err = s.repo.Get(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *serviceImpl) Navigate(ctx context.Context, id string, req dto.NavigateRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Navigate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	return s.mutateAndRespond(ctx, id, func(session *model.Session) error {
		return session.Navigate(model.Page(req.Page))
	})
}

// Select opens the booking form for a room from the current catalog.
func (s *serviceImpl) Select(ctx context.Context, id string, req dto.SelectRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Select")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	scope.SetAttribute("room.id", req.RoomID)

	room, err := s.rooms.Find(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	return s.mutateAndRespond(ctx, id, func(session *model.Session) error {
		session.Select(room)

		return nil
	})
}

func (s *serviceImpl) CloseSelection(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.CloseSelection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutateAndRespond(ctx, id, func(session *model.Session) error {
		session.CloseSelection()

		return nil
	})
}

func (s *serviceImpl) Confirmation(ctx context.Context, id string) (res confirmation.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Confirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if session.Confirmation == nil {
		return res, model.ErrNoConfirmation
	}

	return confirmation.New(s.formatter).Render(*session.Confirmation), nil
}

func (s *serviceImpl) DismissConfirmation(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.DismissConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutateAndRespond(ctx, id, func(session *model.Session) error {
		session.DismissConfirmation()

		return nil
	})
}

// Mutate loads the session, applies fn and saves the result while holding the
// session's lock. The session is saved even when fn fails, so form errors are
// kept. fn's error is returned after a successful save.
func (s *serviceImpl) Mutate(ctx context.Context, id string, fn func(session *model.Session) error) (res model.Session, err error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	fnErr := fn(&res)

	res.Touch(constant.ContextGuest, timezone.Now())

	if err = s.repo.Save(context.WithoutCancel(ctx), res); err != nil {
		return res, fmt.Errorf("failed to save session: %w", err)
	}

	return res, fnErr
}

func (s *serviceImpl) Respond(session model.Session) (res dto.SessionResponse) {
	res.FromModel(session, s.formatter)

	return res
}

func (s *serviceImpl) mutateAndRespond(ctx context.Context, id string, fn func(session *model.Session) error) (dto.SessionResponse, error) {
	session, err := s.Mutate(ctx, id, fn)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	return s.Respond(session), nil
}
