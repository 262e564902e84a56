package services

import (
	"errors"
	"fmt"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) ListByHotel(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("hotel_id = ?", hotelID).Order("code ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Create(actor Actor, room *models.Room) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	var hotel models.Hotel
	if err := s.DB.First(&hotel, room.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load hotel %d: %w", room.HotelID, err)
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) Update(actor Actor, id uint, updated *models.Room) (*models.Room, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}

	// Price changes only affect future bookings; existing lines keep their
	// snapshot.
	updates := map[string]interface{}{
		"code":            updated.Code,
		"type":            updated.Type,
		"capacity":        updated.Capacity,
		"price_per_night": updated.PricePerNight,
		"description":     updated.Description,
		"image_url":       updated.ImageURL,
		"is_active":       updated.IsActive,
	}
	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return &room, nil
}

// Delete removes a room unless reservation lines reference it; deactivate
// instead in that case.
func (s *RoomService) Delete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", id, err)
		}

		var lines int64
		if err := tx.Model(&models.ReservationLine{}).Where("room_id = ?", id).Count(&lines).Error; err != nil {
			return fmt.Errorf("failed to count reservation lines: %w", err)
		}
		if lines > 0 {
			return &DependencyBlockedError{Entity: "room", Blocker: "reservation line", Count: lines}
		}

		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", id, err)
		}
		return nil
	})
}
