package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// List returns active hotels for the public browse page, optionally filtered
// by a name/description search term and a city.
func (s *HotelService) List(search, city string) ([]models.Hotel, error) {
	q := s.DB.Where("is_active = ?", true)
	if term := strings.TrimSpace(search); term != "" {
		like := "%" + term + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if city = strings.TrimSpace(city); city != "" {
		q = q.Where("city = ?", city)
	}
	var hotels []models.Hotel
	if err := q.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// Cities returns the distinct cities of active hotels, for the browse filter.
func (s *HotelService) Cities() ([]string, error) {
	var cities []string
	err := s.DB.Model(&models.Hotel{}).
		Where("is_active = ?", true).
		Distinct("city").
		Order("city ASC").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// Get returns an active hotel with its active rooms.
func (s *HotelService) Get(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.
		Preload("Rooms", "is_active = ?", true).
		Where("id = ? AND is_active = ?", id, true).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", id, err)
	}
	return &hotel, nil
}

// AdminGet returns any hotel regardless of the active flag.
func (s *HotelService) AdminGet(actor Actor, id uint) (*models.Hotel, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var hotel models.Hotel
	if err := s.DB.Preload("Rooms").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", id, err)
	}
	return &hotel, nil
}

// AdminList returns all hotels for the back office.
func (s *HotelService) AdminList(actor Actor) ([]models.Hotel, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var hotels []models.Hotel
	if err := s.DB.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) Create(actor Actor, hotel *models.Hotel) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.DB.Create(hotel).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

func (s *HotelService) Update(actor Actor, id uint, updated *models.Hotel) (*models.Hotel, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", id, err)
	}

	updates := map[string]interface{}{
		"name":        updated.Name,
		"address":     updated.Address,
		"city":        updated.City,
		"country":     updated.Country,
		"description": updated.Description,
		"image_url":   updated.ImageURL,
		"stars":       updated.Stars,
		"is_active":   updated.IsActive,
	}
	if err := s.DB.Model(&hotel).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update hotel %d: %w", id, err)
	}
	return &hotel, nil
}

// Delete removes a hotel. Forbidden while it owns rooms or reservations;
// deactivate instead in that case.
func (s *HotelService) Delete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load hotel %d: %w", id, err)
		}

		var rooms int64
		if err := tx.Model(&models.Room{}).Where("hotel_id = ?", id).Count(&rooms).Error; err != nil {
			return fmt.Errorf("failed to count rooms: %w", err)
		}
		if rooms > 0 {
			return &DependencyBlockedError{Entity: "hotel", Blocker: "room", Count: rooms}
		}

		var reservations int64
		if err := tx.Model(&models.Reservation{}).Where("hotel_id = ?", id).Count(&reservations).Error; err != nil {
			return fmt.Errorf("failed to count reservations: %w", err)
		}
		if reservations > 0 {
			return &DependencyBlockedError{Entity: "hotel", Blocker: "reservation", Count: reservations}
		}

		if err := tx.Delete(&hotel).Error; err != nil {
			return fmt.Errorf("failed to delete hotel %d: %w", id, err)
		}
		return nil
	})
}
