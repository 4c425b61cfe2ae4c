package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"innflow/config"
	"innflow/infras/otel"
	"innflow/internal/domains/room/model"
	"innflow/internal/domains/room/model/dto"
	"innflow/internal/domains/room/repository"
	"innflow/shared"
	"innflow/shared/cache"
	"innflow/shared/constant"
	"innflow/shared/failure"
	"innflow/shared/money"
	"innflow/shared/validator"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	cachePrefixRoom = "room:"
	cacheListRoom   = cachePrefixRoom + "list"
)

type Room interface {
	GetAll(ctx context.Context, req dto.ListRoomsRequest) (dto.GetRoomsResponse, error)
	Featured(ctx context.Context) ([]dto.RoomResponse, error)
	Groups(ctx context.Context) ([]dto.GroupResponse, error)
	Get(ctx context.Context, id int) (dto.RoomResponse, error)
	Find(ctx context.Context, id int) (model.Room, error)
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo      repository.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	formatter money.Formatter
	group     singleflight.Group
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		formatter: money.New(cfg.App.Currency),
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListRoomsRequest) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	category, _ := model.ParseFilter(req.Category)
	scope.SetAttribute("room.category", string(category))

	rooms, fetchErr := s.rooms(ctx)

	res.FromModels(model.Filter(rooms, category), req, s.formatter)
	res.Source, res.Notice = source(fetchErr)
	scope.SetAttribute("room.source", res.Source)

	return res, nil
}

func (s *serviceImpl) Featured(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Featured")
	defer scope.End()

	rooms, _ := s.rooms(ctx)

	return dto.FromModels(model.Featured(rooms), s.formatter), nil
}

func (s *serviceImpl) Groups(ctx context.Context) (res []dto.GroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Groups")
	defer scope.End()

	rooms, _ := s.rooms(ctx)
	groups := model.GroupByCategory(rooms)

	res = make([]dto.GroupResponse, len(groups))
	for i, group := range groups {
		res[i].FromModel(group, s.formatter)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.Find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room, s.formatter)

	return res, nil
}

// Find looks the room up in the current listing.
func (s *serviceImpl) Find(ctx context.Context, id int) (model.Room, error) {
	rooms, _ := s.rooms(ctx)

	room, ok := model.Find(rooms, id)
	if !ok {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

// Invalidate drops the cached listing so the next read goes to the remote
// catalog again.
func (s *serviceImpl) Invalidate(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Invalidate")
	defer scope.End()

	shared.InvalidateCaches(ctx, s.cache, cachePrefixRoom)
}

// rooms returns the catalog: cached listing, then the remote listing, then the
// built-in fixture. It never fails; the error is the reason the fixture was
// used and is nil otherwise.
func (s *serviceImpl) rooms(ctx context.Context) ([]model.Room, error) {
	var cached []model.Room

	err := s.cache.Get(ctx, cacheListRoom, &cached)
	if err == nil && len(cached) > 0 {
		log.Debug().Str("cacheKey", cacheListRoom).Msg("cache hit for rooms")

		return cached, nil
	}

	if err != nil && !cache.IsMiss(err) {
		log.Warn().Err(err).Str("cacheKey", cacheListRoom).Msg("failed to read rooms from cache")
	}

	value, err, _ := s.group.Do(cacheListRoom, func() (any, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return model.Fixture(), err
	}

	rooms, _ := value.([]model.Room)

	return rooms, nil
}

// source tells clients where a listing came from. An unreachable or failing
// backend is announced; an unusable listing is served from the fixture quietly.
func source(fetchErr error) (string, string) {
	switch {
	case fetchErr == nil:
		return dto.SourceRemote, ""
	case errors.Is(fetchErr, repository.ErrUnexpectedShape):
		return dto.SourceLocal, ""
	default:
		return dto.SourceLocal, dto.NoticeOffline
	}
}

func (s *serviceImpl) fetch(ctx context.Context) ([]model.Room, error) {
	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		event := log.Warn().Err(err)
		if errors.Is(err, repository.ErrUnexpectedShape) {
			event = event.Str("reason", "shape")
		}

		event.Msg("room listing unavailable, using built-in catalog")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListRoom, rooms, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return rooms, nil
}
