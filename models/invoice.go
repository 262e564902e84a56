package models

import (
	"time"

	"gorm.io/datatypes"
)

// Invoice is created atomically with the successful payment. The unique index
// on reservation_id backs the duplicate-invoice guard in the payment flow.
type Invoice struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ReservationID uint `gorm:"uniqueIndex;column:reservation_id" json:"reservation_id"`

	Number   string    `gorm:"size:64;index" json:"number"` // FAC-YYYYMMDD-<reservation id, 5 digits>
	IssuedAt time.Time `gorm:"column:issued_at" json:"issued_at"`
	PDFPath  string    `gorm:"column:pdf_path;size:255" json:"pdf_path"`

	// Billed lines frozen at payment time.
	LineSnapshot datatypes.JSON `gorm:"column:line_snapshot" json:"line_snapshot,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"reservation,omitempty"`
}
