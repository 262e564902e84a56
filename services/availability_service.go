package services

import (
	"fmt"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers "is this room free for [start, end)?" by scanning
// reservation lines whose parent reservation is not cancelled. Pure read; the
// booking flow repeats the same query inside its transaction under a room lock.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// IsAvailable reports whether roomID is free over the half-open range
// [start, end). Callers must validate start < end first; a zero-night range
// is a caller error, not an "always available" answer.
func (s *AvailabilityService) IsAvailable(roomID uint, start, end time.Time) (bool, error) {
	return roomFree(s.DB, roomID, start, end)
}

// roomFree runs the overlap query on the given handle so the booking
// transaction can reuse it against its own tx.
func roomFree(tx *gorm.DB, roomID uint, start, end time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.ReservationLine{}).
		Joins("JOIN reservations ON reservations.id = reservation_lines.reservation_id").
		Where("reservation_lines.room_id = ?", roomID).
		Where("reservations.status <> ?", models.ReservationCancelled).
		// Half-open overlap: existingStart < newEnd AND newStart < existingEnd.
		Where("reservations.start_date < ? AND reservations.end_date > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check room availability: %w", err)
	}
	return count == 0, nil
}

// ListAvailableRooms returns the active rooms of a hotel that are free over
// [start, end), for the browse flow.
func (s *AvailabilityService) ListAvailableRooms(hotelID uint, start, end time.Time) ([]models.Room, error) {
	busy := s.DB.Model(&models.ReservationLine{}).
		Select("reservation_lines.room_id").
		Joins("JOIN reservations ON reservations.id = reservation_lines.reservation_id").
		Where("reservations.status <> ?", models.ReservationCancelled).
		Where("reservations.start_date < ? AND reservations.end_date > ?", end, start)

	var rooms []models.Room
	err := s.DB.
		Where("hotel_id = ? AND is_active = ?", hotelID, true).
		Where("id NOT IN (?)", busy).
		Order("code ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}
