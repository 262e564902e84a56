package models

import "time"

// ReservationStatus is a closed set; every transition switch must handle all values.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationPaid      ReservationStatus = "paid"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationPaid,
		ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"index;column:client_id" json:"client_id"`
	HotelID  uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	// Date-only, half-open range: the end date itself is not occupied,
	// so a checkout day can be someone else's checkin day.
	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	Status ReservationStatus `gorm:"size:32;default:pending;index" json:"status"`
	Total  float64           `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client Client            `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
	Hotel  Hotel             `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	Lines  []ReservationLine `gorm:"foreignKey:ReservationID" json:"lines"`
}

// Client aliases User for preloads so reservation JSON reads naturally.
type Client = User
