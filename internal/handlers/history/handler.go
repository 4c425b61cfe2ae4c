package history

import (
	"net/http"

	"innflow/infras/otel"
	"innflow/internal/domains/history/service"
	"innflow/shared/constant"
	"innflow/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.History
	otel    otel.Otel
}

func New(service service.History, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/bookings/me", handler.GetMyBookings)
}

// GetMyBookings lists the booking history of the signed-in guest.
// @Summary Get my bookings
// @Description Forward the x-auth-token header to the booking history service and list the guest's bookings.
// @Tags History
// @Produce json
// @Param x-auth-token header string true "Auth token"
// @Success 200 {object} response.Data[dto.MyBookingsResponse] "Booking history"
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/me [get]
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	bookings, err := handler.service.MyBookings(ctx, r.Header.Get(constant.RequestHeaderAuthToken))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}
