package models

import "time"

type Room struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	HotelID       uint    `gorm:"index;column:hotel_id" json:"hotel_id"`
	Code          string  `gorm:"size:50" json:"code"`
	Type          string  `gorm:"size:100" json:"type"`
	Capacity      int     `gorm:"default:2" json:"capacity"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Description   string  `gorm:"type:text" json:"description"`
	ImageURL      string  `gorm:"size:255" json:"image_url"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
