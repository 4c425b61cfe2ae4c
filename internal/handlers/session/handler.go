package session

import (
	"net/http"
	"strings"

	"innflow/infras/otel"
	"innflow/internal/domains/session/model/dto"
	"innflow/internal/domains/session/service"
	"innflow/shared/constant"
	"innflow/shared/validator"
	"innflow/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the session routes on a group mounted at /sessions.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateSession)
	router.Get("/{id}", handler.GetSession)
	router.Delete("/{id}", handler.EndSession)
	router.Put("/{id}/page", handler.Navigate)
	router.Post("/{id}/selection", handler.SelectRoom)
	router.Delete("/{id}/selection", handler.CloseSelection)
	router.Get("/{id}/confirmation", handler.GetConfirmation)
	router.Delete("/{id}/confirmation", handler.DismissConfirmation)
}

// CreateSession starts a visitor session.
// @Summary Create a session
// @Description Start a new visitor session on the home page with no open booking form.
// @Tags Session
// @Produce json
// @Success 201 {object} response.Data[dto.SessionResponse] "Created session"
// @Failure 500 {object} response.Error
// @Router /v1/sessions [post]
func (handler *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	session, err := handler.service.Create(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, session)
}

// GetSession returns the current state of a session.
// @Summary Get a session
// @Description Retrieve the page, open booking form and confirmation of a session.
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	session, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// EndSession discards a session.
// @Summary End a session
// @Tags Session
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id} [delete]
func (handler *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EndSession")
	defer scope.End()

	if err := handler.service.End(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// Navigate switches the page of a session.
// @Summary Navigate
// @Description Switch the current page. Pages are home, rooms and bookings.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.NavigateRequest true "Target page"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/page [put]
func (handler *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Navigate")
	defer scope.End()

	req := dto.NavigateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.Navigate(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SelectRoom opens the booking form for a room.
// @Summary Select a room
// @Description Open the booking form for a room, replacing any form already open.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectRequest true "Room to book"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/selection [post]
func (handler *Handler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectRoom")
	defer scope.End()

	req := dto.SelectRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.Select(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room_id", req.RoomID).Msg("failed to select room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room selected")

	response.WithJSON(w, http.StatusOK, session)
}

// CloseSelection discards the open booking form.
// @Summary Close the booking form
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/selection [delete]
func (handler *Handler) CloseSelection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseSelection")
	defer scope.End()

	session, err := handler.service.CloseSelection(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// GetConfirmation returns the summary of the last confirmed booking, as a plain
// text receipt when the client accepts text/plain.
// @Summary Get the booking confirmation
// @Tags Session
// @Produce json
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[confirmation.Summary] "Confirmation summary"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/confirmation [get]
func (handler *Handler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConfirmation")
	defer scope.End()

	summary, err := handler.service.Confirmation(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if strings.Contains(r.Header.Get(constant.RequestHeaderAccept), constant.ContentTypeText) {
		response.WithText(w, http.StatusOK, summary.Text())

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// DismissConfirmation clears the confirmation view.
// @Summary Dismiss the booking confirmation
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id}/confirmation [delete]
func (handler *Handler) DismissConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DismissConfirmation")
	defer scope.End()

	session, err := handler.service.DismissConfirmation(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}
