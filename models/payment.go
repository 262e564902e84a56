package models

import "time"

type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailure PaymentStatus = "failure"
)

const PaymentModeSimulated = "simulated"

type Payment struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ReservationID uint `gorm:"index;column:reservation_id" json:"reservation_id"`

	PaidAt         time.Time     `gorm:"column:paid_at" json:"paid_at"`
	Amount         float64       `json:"amount"`
	Mode           string        `gorm:"size:32" json:"mode"`
	Status         PaymentStatus `gorm:"size:32" json:"status"`
	TransactionRef string        `gorm:"size:64" json:"transaction_ref"`

	CreatedAt time.Time `json:"created_at"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"reservation,omitempty"`
}
