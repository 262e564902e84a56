package services

import (
	"fmt"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type DashboardStats struct {
	Hotels        int64   `json:"hotels"`
	Rooms         int64   `json:"rooms"`
	Clients       int64   `json:"clients"`
	Reservations  int64   `json:"reservations"`
	TotalPayments float64 `json:"total_payments"`
}

// Stats aggregates the back-office landing numbers.
func (s *DashboardService) Stats(actor Actor) (*DashboardStats, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	var stats DashboardStats
	if err := s.DB.Model(&models.Hotel{}).Count(&stats.Hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to count hotels: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).Count(&stats.Rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleClient).Count(&stats.Clients).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	if err := s.DB.Model(&models.Reservation{}).Count(&stats.Reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	err := s.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalPayments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}
	return &stats, nil
}
