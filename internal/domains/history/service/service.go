package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"

	"innflow/config"
	"innflow/infras/otel"
	"innflow/internal/domains/history/model/dto"
	"innflow/internal/domains/history/repository"
	"innflow/shared/constant"
	"innflow/shared/failure"
	"innflow/shared/money"

	"github.com/rs/zerolog/log"
)

const MessageLoadFailed = "Could not load your bookings. Please ensure you are logged in."

type History interface {
	MyBookings(ctx context.Context, token string) (dto.MyBookingsResponse, error)
}

type serviceImpl struct {
	repo      repository.History
	otel      otel.Otel
	formatter money.Formatter
}

func New(repo repository.History, cfg *config.Config, otel otel.Otel) History {
	return &serviceImpl{
		repo:      repo,
		otel:      otel,
		formatter: money.New(cfg.App.Currency),
	}
}

// MyBookings lists the stays of the guest owning token. Any failure is
// reported with the same message; a missing token is 401, the rest 502.
func (s *serviceImpl) MyBookings(ctx context.Context, token string) (res dto.MyBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.MyBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token = strings.TrimSpace(token)
	if token == "" {
		return res, failure.Unauthorized(MessageLoadFailed) // nolint:wrapcheck
	}

	records, err := s.repo.MyBookings(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking history")

		return res, failure.BadGateway(MessageLoadFailed) // nolint:wrapcheck
	}

	for _, record := range records {
		if !record.Status.Known() {
			log.Warn().Str("id", record.ID).Str("status", string(record.Status)).Msg("unknown booking status")
		}
	}

	res.FromModels(records, s.formatter)

	return res, nil
}
