package models

import "time"

type Hotel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:190" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100;index" json:"city"`
	Country     string `gorm:"size:100" json:"country"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
	Stars       int    `gorm:"default:3" json:"stars"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
