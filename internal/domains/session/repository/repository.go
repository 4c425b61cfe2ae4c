package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innflow/config"
	"innflow/infras/otel"
	"innflow/internal/domains/session/model"
	"innflow/shared"
	"innflow/shared/cache"
	"innflow/shared/constant"
	"innflow/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSession = "session:get"
)

// Session stores visitor sessions in redis with a sliding TTL.
type Session interface {
	Get(ctx context.Context, id string) (model.Session, error)
	Save(ctx context.Context, session model.Session) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Session {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.cache.Get(ctx, shared.BuildCacheKey(cacheGetSession, id), &res)
	if err != nil {
		if cache.IsMiss(err) {
			return res, failure.NotFound("session not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("session_id", id).Msg("failed to get session")

		return res, fmt.Errorf("failed to get session: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Save(ctx context.Context, session model.Session) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, shared.BuildCacheKey(cacheGetSession, session.ID), session, r.cfg.Cache.SessionTTL); err != nil {
		log.Error().Err(err).Str("session_id", session.ID).Msg("failed to save session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Delete(ctx, shared.BuildCacheKey(cacheGetSession, id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
