package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ClimateAire       = "AIRE"
	ClimateVentilador = "VENTILADOR"
	ClimateNone       = "NONE"

	// MaxRoomImages caps the gallery per room.
	MaxRoomImages = 4
)

type Room struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	Slug        string `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Price     float64 `json:"price"`
	PriceHour float64 `gorm:"column:price_hour" json:"priceHour"` // 0 = hourly booking disabled

	Climate   string         `gorm:"size:20;default:NONE" json:"climate"`
	Images    datatypes.JSON `json:"images"`
	Amenities datatypes.JSON `json:"amenities"`

	Holder       string  `gorm:"size:255" json:"holder"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `gorm:"column:reviews_count" json:"reviewsCount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidClimate(climate string) bool {
	switch climate {
	case ClimateAire, ClimateVentilador, ClimateNone:
		return true
	}
	return false
}
