package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// normalizeDate truncates to date-only granularity in UTC. No partial-day
// bookings.
func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// lockForUpdate adds a row lock on dialects that support it. SQLite (used by
// the test suite) has no FOR UPDATE; there the whole DB serializes writes
// anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Create books roomID for [start, end) on behalf of the actor. The
// availability check and the insert run in one transaction under a lock on the
// room row, so two concurrent bookings for the same room cannot both pass the
// check and commit.
func (s *ReservationService) Create(actor Actor, hotelID, roomID uint, start, end time.Time) (*models.Reservation, error) {
	start = normalizeDate(start)
	end = normalizeDate(end)

	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}
	if start.Before(normalizeDate(time.Now())) {
		return nil, ErrPastStartDate
	}

	var created models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
		}
		if !hotel.IsActive {
			return ErrNotFound
		}

		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}
		if room.HotelID != hotelID || !room.IsActive {
			return ErrNotFound
		}

		free, err := roomFree(tx, roomID, start, end)
		if err != nil {
			return err
		}
		if !free {
			return ErrRoomUnavailable
		}

		nights := int(end.Sub(start).Hours() / 24)
		subtotal := room.PricePerNight * float64(nights)

		created = models.Reservation{
			ClientID:  actor.UserID,
			HotelID:   hotelID,
			StartDate: start,
			EndDate:   end,
			Status:    models.ReservationPending,
			Total:     subtotal,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		line := models.ReservationLine{
			ReservationID: created.ID,
			RoomID:        roomID,
			PricePerNight: room.PricePerNight,
			Nights:        nights,
			Subtotal:      subtotal,
		}
		if err := tx.Create(&line).Error; err != nil {
			return fmt.Errorf("failed to create reservation line: %w", err)
		}
		created.Lines = []models.ReservationLine{line}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByClient returns the actor's own reservations, newest first.
func (s *ReservationService) ListByClient(actor Actor) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Hotel").
		Preload("Lines.Room").
		Where("client_id = ?", actor.UserID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

// Get returns one reservation. Non-admin callers only see their own; anything
// else is masked as not found.
func (s *ReservationService) Get(actor Actor, id uint) (*models.Reservation, error) {
	var res models.Reservation
	q := s.DB.
		Preload("Hotel").
		Preload("Client").
		Preload("Lines.Room").
		Where("id = ?", id)
	if !actor.IsAdmin() {
		q = q.Where("client_id = ?", actor.UserID)
	}
	if err := q.First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return &res, nil
}

// Cancel sets the reservation to cancelled. A paid reservation cannot be
// cancelled here; the caller is told to contact support instead.
func (s *ReservationService) Cancel(actor Actor, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		q := lockForUpdate(tx).Where("id = ?", id)
		if !actor.IsAdmin() {
			q = q.Where("client_id = ?", actor.UserID)
		}
		if err := q.First(&res).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load reservation %d: %w", id, err)
		}

		switch res.Status {
		case models.ReservationPaid:
			return ErrAlreadyPaid
		case models.ReservationCancelled:
			return ErrAlreadyCancelled
		case models.ReservationPending, models.ReservationConfirmed, models.ReservationCompleted:
			// cancellable
		}

		if err := tx.Model(&res).Update("status", models.ReservationCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel reservation %d: %w", id, err)
		}
		return nil
	})
}

// AdminList returns reservations for the back office, optionally filtered by
// status.
func (s *ReservationService) AdminList(actor Actor, status string) ([]models.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	q := s.DB.
		Preload("Client").
		Preload("Hotel").
		Preload("Lines.Room").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Reservation
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

// AdminUpdate overwrites status and dates directly. Availability is NOT
// re-checked on manual edits; the back office owns the consequences.
func (s *ReservationService) AdminUpdate(actor Actor, id uint, status models.ReservationStatus, start, end time.Time) (*models.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	start = normalizeDate(start)
	end = normalizeDate(end)
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}

	var res models.Reservation
	if err := s.DB.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}

	updates := map[string]interface{}{
		"status":     status,
		"start_date": start,
		"end_date":   end,
	}
	if err := s.DB.Model(&res).Updates(updates).Error; err != nil {
		// Re-check existence: a vanished row is not-found, anything else is
		// infrastructure.
		var again models.Reservation
		if lookupErr := s.DB.First(&again, id).Error; errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update reservation %d: %w", id, err)
	}
	return &res, nil
}

// AdminDelete removes a reservation and its lines. Blocked while invoices or
// payments reference it; cancel instead of deleting in that case.
func (s *ReservationService) AdminDelete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load reservation %d: %w", id, err)
		}

		var invoices int64
		if err := tx.Model(&models.Invoice{}).Where("reservation_id = ?", id).Count(&invoices).Error; err != nil {
			return fmt.Errorf("failed to count invoices: %w", err)
		}
		if invoices > 0 {
			return &DependencyBlockedError{Entity: "reservation", Blocker: "invoice", Count: invoices}
		}

		var payments int64
		if err := tx.Model(&models.Payment{}).Where("reservation_id = ?", id).Count(&payments).Error; err != nil {
			return fmt.Errorf("failed to count payments: %w", err)
		}
		if payments > 0 {
			return &DependencyBlockedError{Entity: "reservation", Blocker: "payment", Count: payments}
		}

		if err := tx.Where("reservation_id = ?", id).Delete(&models.ReservationLine{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservation lines: %w", err)
		}
		if err := tx.Delete(&res).Error; err != nil {
			return fmt.Errorf("failed to delete reservation %d: %w", id, err)
		}
		return nil
	})
}
