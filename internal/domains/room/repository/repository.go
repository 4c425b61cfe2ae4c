package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"innflow/infras/innflow"
	"innflow/infras/otel"
	"innflow/internal/domains/room/model"
	"innflow/shared/constant"
)

// ErrUnexpectedShape means the remote listing decoded but cannot be used as a catalog.
var ErrUnexpectedShape = errors.New("unexpected room listing shape")

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	client innflow.Client
	otel   otel.Otel
}

func New(client innflow.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// GetAll lists rooms from the remote API. An empty listing, or a record without
// a known category or numeric id, is reported as ErrUnexpectedShape.
func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := r.client.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty listing", ErrUnexpectedShape)
	}

	res = make([]model.Room, 0, len(records))

	for i, record := range records {
		room, err := toModel(record)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrUnexpectedShape, i, err)
		}

		res = append(res, room)
	}

	scope.SetAttribute("room.count", len(res))

	return res, nil
}

func toModel(record innflow.Room) (model.Room, error) {
	if record.Category == "" {
		return model.Room{}, errors.New("missing category")
	}

	category := model.Category(record.Category)
	if !category.Valid() {
		return model.Room{}, fmt.Errorf("unknown category %q", record.Category)
	}

	id, ok := record.ID.Int()
	if !ok {
		return model.Room{}, fmt.Errorf("non numeric id %q", record.ID)
	}

	roomNumber := record.RoomNumber
	if roomNumber == "" {
		roomNumber = record.ID.String()
	}

	return model.Room{
		ID:          id,
		RoomNumber:  roomNumber,
		Name:        record.Name,
		Category:    category,
		Description: record.Description,
		Capacity:    record.Capacity,
		Price:       record.Price,
		Image:       record.Image,
		Amenities:   record.Amenities,
		Available:   record.Available,
	}, nil
}
