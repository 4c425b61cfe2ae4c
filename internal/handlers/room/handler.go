package room

import (
	"net/http"

	"innflow/infras/otel"
	"innflow/internal/domains/room/model/dto"
	"innflow/internal/domains/room/service"
	"innflow/shared"
	"innflow/shared/constant"
	"innflow/shared/failure"
	"innflow/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/featured", handler.GetFeaturedRooms)
		routerGroup.Get("/groups", handler.GetRoomGroups)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms retrieves the room catalog.
// @Summary Get all rooms
// @Description Retrieve the room catalog, optionally filtered by category and paginated. Falls back to the built-in catalog when the remote listing is unavailable.
// @Tags Room
// @Accept json
// @Produce json
// @Param category query string false "Room category (All, Standard Solo, Deluxe Solo, Deluxe Double, Double Suite, Suite Premier)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	req := dto.ListRoomsRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetFeaturedRooms retrieves the rooms shown on the home page.
// @Summary Get featured rooms
// @Description Retrieve the first available room of each category.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomResponse] "Featured rooms"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/featured [get]
func (handler *Handler) GetFeaturedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedRooms")
	defer scope.End()

	rooms, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomGroups retrieves the catalog grouped by category.
// @Summary Get room groups
// @Description Retrieve rooms grouped by category in catalog order, with the starting price of each group.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]dto.GroupResponse] "Room groups"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/groups [get]
func (handler *Handler) GetRoomGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomGroups")
	defer scope.End()

	groups, err := handler.service.Groups(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room groups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, groups)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room from the catalog by its identifier.
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, ok := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		err := failure.BadRequestFromString("invalid room id")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room_id", id).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}
