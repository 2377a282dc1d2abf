package models

import "time"

// Space types mirror the core API's catalogue.
const (
	SpaceTypeHotDesk       = "hot_desk"
	SpaceTypePrivateOffice = "private_office"
	SpaceTypeMeetingRoom   = "meeting_room"
	SpaceTypeEventSpace    = "event_space"
	SpaceTypePhoneBooth    = "phone_booth"
)

// Space is a bookable coworking space as served by the core API.
type Space struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Description   *string   `json:"description"`
	Capacity      int       `json:"capacity"`
	PricePerHour  float64   `json:"price_per_hour"`
	PricePerDay   *float64  `json:"price_per_day"`
	PricePerMonth *float64  `json:"price_per_month"`
	Location      string    `json:"location"`
	Floor         *string   `json:"floor"`
	Amenities     []string  `json:"amenities"`
	ImageURL      *string   `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// SpaceFilter narrows a space listing. Zero values mean "no filter".
type SpaceFilter struct {
	Type        string
	Location    string
	MinCapacity int
	MaxPrice    float64
}

// SpaceInput is the admin create/update payload forwarded to the core API.
type SpaceInput struct {
	Name          string   `json:"name" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Description   *string  `json:"description,omitempty"`
	Capacity      int      `json:"capacity" binding:"required"`
	PricePerHour  float64  `json:"price_per_hour" binding:"required"`
	PricePerDay   *float64 `json:"price_per_day,omitempty"`
	PricePerMonth *float64 `json:"price_per_month,omitempty"`
	Location      string   `json:"location" binding:"required"`
	Floor         *string  `json:"floor,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}
