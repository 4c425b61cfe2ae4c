package repository

import (
	"context"
	"fmt"

	"innflow/infras/innflow"
	"innflow/infras/otel"
	"innflow/internal/domains/booking/model"
	"innflow/internal/domains/booking/wizard"
	"innflow/shared/constant"
)

type repositoryImpl struct {
	client innflow.Client
	otel   otel.Otel
}

// New returns the remote side of the booking wizard, backed by the InnFlow API.
func New(client innflow.Client, otel otel.Otel) wizard.Remote {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) CreateGuest(ctx context.Context, guest model.Guest) (res model.Guest, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := r.client.CreateGuest(ctx, innflow.Guest{
		Name:  guest.Name,
		Email: guest.Email,
		Phone: guest.Phone,
	})
	if err != nil {
		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	return model.Guest{
		ID:    created.ID.String(),
		Name:  created.Name,
		Email: created.Email,
		Phone: created.Phone,
	}, nil
}

func (r *repositoryImpl) CreateBooking(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := r.client.CreateBooking(ctx, innflow.Booking{
		GuestID:  innflow.ID(booking.GuestID),
		RoomID:   booking.RoomID,
		CheckIn:  booking.CheckIn,
		CheckOut: booking.CheckOut,
		Guests:   booking.Guests,
	})
	if err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return model.Booking{
		ID:       created.ID.String(),
		GuestID:  created.GuestID.String(),
		RoomID:   created.RoomID,
		CheckIn:  created.CheckIn,
		CheckOut: created.CheckOut,
		Guests:   created.Guests,
	}, nil
}
