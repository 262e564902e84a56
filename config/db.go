package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-booking-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_booking")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures a default admin and a small starter catalog so the app
// is usable on first boot.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FirstName: "Admin",
				LastName:  "User",
				Email:     envOrDefault("ADMIN_EMAIL", "admin@hotel.local"),
				Password:  string(hash),
				Role:      models.RoleAdmin,
				IsActive:  true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotels := []models.Hotel{
			{
				Name: "Hotel du Port", Address: "12 Quai des Brumes", City: "Marseille",
				Country: "France", Description: "Harbour views and late checkout.",
				Stars: 4, IsActive: true,
			},
			{
				Name: "Riad Atlas", Address: "3 Derb El Ferrane", City: "Marrakech",
				Country: "Morocco", Description: "Courtyard riad near the medina.",
				Stars: 3, IsActive: true,
			},
		}
		if err := DB.Create(&hotels).Error; err != nil {
			log.Printf("warning: failed to seed hotels: %v", err)
			return
		}

		rooms := []models.Room{
			{HotelID: hotels[0].ID, Code: "101", Type: "Standard", Capacity: 2, PricePerNight: 85, IsActive: true},
			{HotelID: hotels[0].ID, Code: "102", Type: "Standard", Capacity: 2, PricePerNight: 85, IsActive: true},
			{HotelID: hotels[0].ID, Code: "201", Type: "Suite", Capacity: 4, PricePerNight: 190, IsActive: true},
			{HotelID: hotels[1].ID, Code: "A1", Type: "Double", Capacity: 2, PricePerNight: 60, IsActive: true},
			{HotelID: hotels[1].ID, Code: "A2", Type: "Family", Capacity: 5, PricePerNight: 110, IsActive: true},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
			return
		}
		log.Println("Starter hotels and rooms seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// parent -> child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Reservation{},
		&models.ReservationLine{},
		&models.Payment{},
		&models.Invoice{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
