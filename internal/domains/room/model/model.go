package model

import (
	"innflow/shared/validator"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	EntityName = "room"

	categoryValidationTag = "category"
)

type Category string

const (
	CategoryAll          Category = "All"
	CategoryStandardSolo Category = "Standard Solo"
	CategoryDeluxeSolo   Category = "Deluxe Solo"
	CategoryDeluxeDouble Category = "Deluxe Double"
	CategoryDoubleSuite  Category = "Double Suite"
	CategorySuitePremier Category = "Suite Premier"
)

// Categories lists the room categories in display order.
var Categories = []Category{
	CategoryStandardSolo,
	CategoryDeluxeSolo,
	CategoryDeluxeDouble,
	CategoryDoubleSuite,
	CategorySuitePremier,
}

func init() {
	err := validator.RegisterValidation(categoryValidationTag, func(fl val.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		_, ok = ParseFilter(value)

		return ok
	})
	if err != nil {
		panic(err)
	}
}

func (c Category) Valid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}

	return false
}

// ParseFilter reads a category filter. The empty string and "All" select every
// category and are returned as CategoryAll.
func ParseFilter(value string) (Category, bool) {
	if value == "" || Category(value) == CategoryAll {
		return CategoryAll, true
	}

	category := Category(value)

	return category, category.Valid()
}

type Room struct {
	ID          int             `json:"id"`
	RoomNumber  string          `json:"room_number"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Capacity    int             `json:"capacity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Amenities   []string        `json:"amenities"`
	Available   bool            `json:"available"`
}

// MaxGuests is the capacity, never less than one.
func (r Room) MaxGuests() int {
	return max(r.Capacity, 1)
}

// Group is one category of the catalog.
type Group struct {
	Category    Category
	Description string
	StartingAt  decimal.Decimal
	Capacity    int
	Image       string
	Rooms       []Room
}

// Filter keeps the rooms of the given category. CategoryAll keeps everything.
func Filter(rooms []Room, category Category) []Room {
	if category == CategoryAll || category == "" {
		return rooms
	}

	res := make([]Room, 0, len(rooms))

	for _, room := range rooms {
		if room.Category == category {
			res = append(res, room)
		}
	}

	return res
}

// Featured returns the first room of each category, in category order.
func Featured(rooms []Room) []Room {
	res := make([]Room, 0, len(Categories))

	for _, category := range Categories {
		for _, room := range rooms {
			if room.Category == category {
				res = append(res, room)

				break
			}
		}
	}

	return res
}

// GroupByCategory groups rooms in category order. Empty categories are omitted.
// A group takes its description, image and starting price from its first room.
func GroupByCategory(rooms []Room) []Group {
	res := make([]Group, 0, len(Categories))

	for _, category := range Categories {
		members := Filter(rooms, category)
		if len(members) == 0 {
			continue
		}

		first := members[0]

		res = append(res, Group{
			Category:    category,
			Description: first.Description,
			StartingAt:  first.Price,
			Capacity:    first.Capacity,
			Image:       first.Image,
			Rooms:       members,
		})
	}

	return res
}

// Find returns the room with the given id.
func Find(rooms []Room, id int) (Room, bool) {
	for _, room := range rooms {
		if room.ID == id {
			return room, true
		}
	}

	return Room{}, false
}
