package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innflow/infras/innflow"
	"innflow/infras/otel"
	"innflow/internal/domains/history/model"
	"innflow/shared/constant"
)

type History interface {
	MyBookings(ctx context.Context, token string) ([]model.Record, error)
}

type repositoryImpl struct {
	client innflow.Client
	otel   otel.Otel
}

func New(client innflow.Client, otel otel.Otel) History {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) MyBookings(ctx context.Context, token string) (res []model.Record, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.MyBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := r.client.MyBookings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = make([]model.Record, 0, len(records))
	for _, record := range records {
		res = append(res, model.Record{
			ID: record.ID.String(),
			Hotel: model.Hotel{
				Name:     record.Hotel.Name,
				Location: record.Hotel.Location,
			},
			RoomType:     record.RoomType,
			CheckInDate:  record.CheckInDate,
			CheckOutDate: record.CheckOutDate,
			TotalPrice:   record.TotalPrice,
			Status:       model.Status(record.Status),
		})
	}

	return res, nil
}
