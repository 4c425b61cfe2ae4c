package dto

import (
	"net/http"

	"innflow/internal/domains/room/model"
	"innflow/shared"
	"innflow/shared/constant"
	gDto "innflow/shared/dto"
	"innflow/shared/money"

	"github.com/shopspring/decimal"
)

type ListRoomsRequest struct {
	Category string `json:"category" validate:"omitempty,category"`
	gDto.QueryParams
}

func (l *ListRoomsRequest) FromRequest(r *http.Request) error {
	l.Category = r.URL.Query().Get(constant.RequestParamCategory)

	return l.QueryParams.FromRequest(r)
}

type RoomResponse struct {
	ID           int             `json:"id"`
	RoomNumber   string          `json:"room_number"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Capacity     int             `json:"capacity"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Image        string          `json:"image"`
	Amenities    []string        `json:"amenities"`
	Available    bool            `json:"available"`
}

func (r *RoomResponse) FromModel(model model.Room, formatter money.Formatter) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Name = model.Name
	r.Category = string(model.Category)
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.Price = model.Price
	r.PriceDisplay = formatter.Format(model.Price)
	r.Image = model.Image
	r.Amenities = model.Amenities
	r.Available = model.Available
}

func FromModels(models []model.Room, formatter money.Formatter) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod, formatter)
	}

	return res
}

const (
	SourceRemote  = "remote"
	SourceLocal   = "local"
	NoticeOffline = "Unable to connect to server. Displaying local room data."
)

// GetRoomsResponse is one page of the catalog. Source is SourceLocal when the
// built-in rooms are served, and Notice is set when that is because the
// backend could not be reached.
type GetRoomsResponse struct {
	Rooms      []RoomResponse   `json:"rooms"`
	Category   string           `json:"category"`
	TotalData  int              `json:"total_data"`
	Source     string           `json:"source"`
	Notice     string           `json:"notice,omitempty"`
	Pagination *gDto.Pagination `json:"pagination,omitempty"`
}

// FromModels fills the response from the filtered rooms, applying the requested
// page when there is one.
func (r *GetRoomsResponse) FromModels(models []model.Room, req ListRoomsRequest, formatter money.Formatter) {
	r.Category = string(model.CategoryAll)
	if req.Category != "" {
		r.Category = req.Category
	}

	r.TotalData = len(models)

	if req.Paginated() {
		r.Pagination = &gDto.Pagination{
			Page:      req.Page,
			Limit:     req.Limit,
			Total:     len(models),
			TotalPage: shared.CalculateTotalPage(len(models), req.Limit),
		}

		models = shared.Paginate(models, req.Page, req.Limit)
	}

	r.Rooms = FromModels(models, formatter)
}

type GroupResponse struct {
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	StartingAt        decimal.Decimal `json:"starting_at"`
	StartingAtDisplay string          `json:"starting_at_display"`
	Capacity          int             `json:"capacity"`
	Image             string          `json:"image"`
	Available         int             `json:"available"`
	Rooms             []RoomResponse  `json:"rooms"`
}

func (g *GroupResponse) FromModel(group model.Group, formatter money.Formatter) {
	g.Category = string(group.Category)
	g.Description = group.Description
	g.StartingAt = group.StartingAt
	g.StartingAtDisplay = formatter.Format(group.StartingAt)
	g.Capacity = group.Capacity
	g.Image = group.Image
	g.Rooms = FromModels(group.Rooms, formatter)

	for _, room := range group.Rooms {
		if room.Available {
			g.Available++
		}
	}
}
