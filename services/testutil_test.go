package services

import (
	"testing"
	"time"

	"hotel-booking-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Reservation{},
		&models.ReservationLine{},
		&models.Payment{},
		&models.Invoice{},
	))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// day returns today+offset at date granularity, for tests that must satisfy
// the "start date not in the past" rule.
func day(offset int) time.Time {
	return normalizeDate(time.Now()).AddDate(0, 0, offset)
}

func seedClient(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  "Client",
		Email:     email,
		Password:  "x",
		Role:      models.RoleClient,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedHotelWithRoom(t *testing.T, db *gorm.DB, price float64) (models.Hotel, models.Room) {
	t.Helper()
	hotel := models.Hotel{
		Name: "Hotel du Port", Address: "12 Quai des Brumes", City: "Marseille",
		Country: "France", Stars: 4, IsActive: true,
	}
	require.NoError(t, db.Create(&hotel).Error)
	room := models.Room{
		HotelID: hotel.ID, Code: "101", Type: "Standard",
		Capacity: 2, PricePerNight: price, IsActive: true,
	}
	require.NoError(t, db.Create(&room).Error)
	return hotel, room
}

func clientActor(u models.User) Actor {
	return Actor{UserID: u.ID, Role: u.Role}
}

func adminActor() Actor {
	return Actor{UserID: 9999, Role: models.RoleAdmin}
}
