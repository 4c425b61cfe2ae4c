//go:build wireinject
// +build wireinject

package di

import (
	"innflow/config"
	"innflow/infras/innflow"
	"innflow/infras/otel"
	"innflow/infras/redis"
	bookingHandler "innflow/internal/handlers/booking"
	historyHandler "innflow/internal/handlers/history"
	roomHandler "innflow/internal/handlers/room"
	sessionHandler "innflow/internal/handlers/session"
	"innflow/shared/cache"
	"innflow/transport/http"
	"innflow/transport/http/middleware"
	"innflow/transport/http/router"

	bookingRepository "innflow/internal/domains/booking/repository"
	bookingService "innflow/internal/domains/booking/service"
	historyRepository "innflow/internal/domains/history/repository"
	historyService "innflow/internal/domains/history/service"
	roomRepository "innflow/internal/domains/room/repository"
	roomService "innflow/internal/domains/room/service"
	sessionRepository "innflow/internal/domains/session/repository"
	sessionService "innflow/internal/domains/session/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	innflow.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var historyDomain = wire.NewSet(
	historyRepository.New,
	historyService.New,
)

var domains = wire.NewSet(
	roomDomain,
	sessionDomain,
	bookingDomain,
	historyDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	sessionHandler.New,
	bookingHandler.New,
	historyHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
