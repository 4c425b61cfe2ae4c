package otel_test

import (
	"context"
	"errors"
	"testing"

	"innflow/config"
	"innflow/infras/otel"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "innflow"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.ListRooms")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"room.category": "Deluxe Solo",
		"room.count":    10,
		"room.featured": true,
		"room.ids":      []string{"101", "102"},
		"room.price":    1500.5,
	})
	scope.AddEvent("rooms.loaded")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("upstream unreachable"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
