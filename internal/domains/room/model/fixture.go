package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	imageStandardSolo = "https://images.unsplash.com/photo-1648766378129-11c3d8d0da05?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxzdGFuZGFyZCUyMGhvdGVsJTIwcm9vbSUyMHNpbmdsZSUyMGJlZHxlbnwxfHx8fDE3NjQ4MDc2NTh8MA&ixlib=rb-4.1.0&q=80&w=1080"
	imageDeluxeSolo   = "https://images.unsplash.com/photo-1509647924673-bbb53e22eeb8?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxkZWx1eGUlMjBob3RlbCUyMHJvb20lMjBpbnRlcmlvcnxlbnwxfHx8fDE3NjQ4MDc2NTh8MA&ixlib=rb-4.1.0&q=80&w=1080"
	imageDeluxeDouble = "https://images.unsplash.com/photo-1744534637336-6110864236fc?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxob3RlbCUyMGRvdWJsZSUyMGJlZCUyMHJvb218ZW58MXx8fHwxNzY0ODA3NjU4fDA&ixlib=rb-4.1.0&q=80&w=1080"
	imageDoubleSuite  = "https://images.unsplash.com/photo-1731336478850-6bce7235e320?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxob3RlbCUyMHN1aXRlJTIwYmVkcm9vbSUyMGx1eHVyeXxlbnwxfHx8fDE3NjQ4MDc2NTl8MA&ixlib=rb-4.1.0&q=80&w=1080"
	imageSuitePremier = "https://images.unsplash.com/photo-1748652252546-6bea5d896bd4?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwcmVzaWRlbnRpYWwlMjBzdWl0ZSUyMGhvdGVsfGVufDF8fHx8MTc2NDY5MjkxN3ww&ixlib=rb-4.1.0&q=80&w=1080"
)

// Template holds what every room of a series shares.
type Template struct {
	NamePrefix  string
	Description string
	Capacity    int
	Price       decimal.Decimal
	Image       string
	Amenities   []string
}

// Series describes Count consecutive rooms starting at StartNumber.
type Series struct {
	Category    Category
	StartNumber int
	Count       int
	Template    Template
}

// Generate expands series into rooms. The room number doubles as the id.
func Generate(series ...Series) []Room {
	total := 0
	for _, s := range series {
		total += max(s.Count, 0)
	}

	rooms := make([]Room, 0, total)

	for _, s := range series {
		for i := range max(s.Count, 0) {
			number := s.StartNumber + i
			roomNumber := strconv.Itoa(number)

			rooms = append(rooms, Room{
				ID:          number,
				RoomNumber:  roomNumber,
				Name:        s.Template.NamePrefix + " " + roomNumber,
				Category:    s.Category,
				Description: s.Template.Description,
				Capacity:    s.Template.Capacity,
				Price:       s.Template.Price,
				Image:       s.Template.Image,
				Amenities:   append([]string(nil), s.Template.Amenities...),
				Available:   true,
			})
		}
	}

	return rooms
}

// DefaultSeries is the built-in catalog used when the remote listing is unusable.
func DefaultSeries() []Series {
	return []Series{
		{
			Category:    CategoryStandardSolo,
			StartNumber: 101,
			Count:       10,
			Template: Template{
				NamePrefix:  "Standard Solo Room",
				Description: "Cozy single room perfect for solo travelers. Features a comfortable single bed, work desk, and essential amenities.",
				Capacity:    1,
				Price:       decimal.NewFromInt(700),
				Image:       imageStandardSolo,
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Cable TV", "Hot Shower", "Work Desk"},
			},
		},
		{
			Category:    CategoryDeluxeSolo,
			StartNumber: 201,
			Count:       10,
			Template: Template{
				NamePrefix:  "Deluxe Solo Room",
				Description: "Upgraded single room with premium amenities. Spacious layout with a queen-sized bed and modern furnishings.",
				Capacity:    1,
				Price:       decimal.NewFromInt(1000),
				Image:       imageDeluxeSolo,
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Smart TV", "Premium Bedding", "Mini Bar", "Hot Shower", "Work Desk"},
			},
		},
		{
			Category:    CategoryDeluxeDouble,
			StartNumber: 301,
			Count:       5,
			Template: Template{
				NamePrefix:  "Deluxe Double Room",
				Description: "Spacious room with a luxurious double bed. Perfect for couples seeking comfort and style.",
				Capacity:    2,
				Price:       decimal.NewFromInt(1500),
				Image:       imageDeluxeDouble,
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Smart TV", "Premium Bedding", "Mini Bar", "Hot Shower", "Bathtub", "City View"},
			},
		},
		{
			Category:    CategoryDoubleSuite,
			StartNumber: 306,
			Count:       5,
			Template: Template{
				NamePrefix:  "Double Suite",
				Description: "Elegant suite with separate living area and bedroom. Features a king-sized bed and premium amenities.",
				Capacity:    2,
				Price:       decimal.NewFromInt(5000),
				Image:       imageDoubleSuite,
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Smart TV", "Premium Bedding", "Mini Bar", "Coffee Maker", "Hot Shower", "Bathtub", "Living Area", "City View"},
			},
		},
		{
			Category:    CategorySuitePremier,
			StartNumber: 401,
			Count:       5,
			Template: Template{
				NamePrefix:  "Suite Premier",
				Description: "Our most luxurious accommodation. Expansive suite with separate bedroom, living room, and panoramic city views.",
				Capacity:    3,
				Price:       decimal.NewFromInt(8000),
				Image:       imageSuitePremier,
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Smart TV", "Premium Bedding", "Mini Bar", "Coffee Maker", "Hot Shower", "Jacuzzi", "Living Area", "Dining Area", "Panoramic View", "VIP Service"},
			},
		},
	}
}

// Fixture returns a fresh copy of the default catalog.
func Fixture() []Room {
	return Generate(DefaultSeries()...)
}
