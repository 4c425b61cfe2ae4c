package booking

import (
	"net/http"

	"innflow/infras/otel"
	"innflow/internal/domains/booking/model/dto"
	"innflow/internal/domains/booking/service"
	"innflow/shared/constant"
	"innflow/shared/validator"
	"innflow/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/quote", handler.GetQuote)
}

// SessionRouter registers the booking form steps on a group mounted at /sessions.
func (handler *Handler) SessionRouter(router chi.Router) {
	router.Put("/{id}/selection/guest", handler.SubmitGuest)
	router.Post("/{id}/selection/back", handler.Back)
	router.Put("/{id}/selection/stay", handler.SubmitStay)
}

// GetQuote prices a stay.
// @Summary Quote a stay
// @Description Compute nights and total for a room and a date range. Missing or reversed dates price zero nights.
// @Tags Booking
// @Produce json
// @Param room_id query int true "Room ID"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room_id", req.RoomID).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// SubmitGuest submits the guest step of the booking form.
// @Summary Submit guest details
// @Description Record name, email and phone and move to the stay step. Name and email are required.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.GuestRequest true "Guest details"
// @Success 200 {object} response.Data[sessionDto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/selection/guest [put]
func (handler *Handler) SubmitGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitGuest")
	defer scope.End()

	req := dto.GuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.SubmitGuest(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Back returns the booking form to the guest step.
// @Summary Back to guest details
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[sessionDto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/selection/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	session, err := handler.service.Back(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SubmitStay submits the stay step and books the room.
// @Summary Submit stay and book
// @Description Validate the dates, create the guest and then the booking. On success the confirmation summary is returned and kept on the session.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.StayRequest true "Stay details"
// @Success 201 {object} response.Data[confirmation.Summary] "Confirmation summary"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/selection/stay [put]
func (handler *Handler) SubmitStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitStay")
	defer scope.End()

	req := dto.StayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	summary, err := handler.service.SubmitStay(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed")

	response.WithJSON(w, http.StatusCreated, summary)
}
