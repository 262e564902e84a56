package models

import "time"

// ReservationLine is one room-stay segment of a reservation. PricePerNight is
// snapshotted at booking time so later room price changes never alter history.
type ReservationLine struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ReservationID uint `gorm:"index;column:reservation_id" json:"reservation_id"`
	RoomID        uint `gorm:"index;column:room_id" json:"room_id"`

	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Nights        int     `json:"nights"`
	Subtotal      float64 `json:"subtotal"`

	CreatedAt time.Time `json:"created_at"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
