package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-backend/models"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// isDuplicateKey detects a unique-index violation across the drivers we run
// on (MySQL in production, sqlite in tests).
func isDuplicateKey(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a client account. Email is the login identity and must be
// unique.
func (s *UserService) Register(firstName, lastName, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleClient,
		IsActive:  true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// unique index may still fire under a concurrent register
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate checks email/password. Inactive accounts and unknown emails
// fail the same way as a wrong password.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return &user, nil
}

// AdminList returns users for the back office, optionally filtered by role.
func (s *UserService) AdminList(actor Actor, role string) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	q := s.DB.Order("created_at DESC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// AdminUpdate changes role and active flag only; identity fields stay as
// registered.
func (s *UserService) AdminUpdate(actor Actor, id uint, role string, active bool) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if role != models.RoleClient && role != models.RoleAdmin {
		return nil, ErrInvalidStatus
	}
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	updates := map[string]interface{}{"role": role, "is_active": active}
	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &user, nil
}

// AdminDelete removes a user without reservations; accounts with history get
// deactivated through AdminUpdate instead.
func (s *UserService) AdminDelete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load user %d: %w", id, err)
		}

		var reservations int64
		if err := tx.Model(&models.Reservation{}).Where("client_id = ?", id).Count(&reservations).Error; err != nil {
			return fmt.Errorf("failed to count reservations: %w", err)
		}
		if reservations > 0 {
			return &DependencyBlockedError{Entity: "user", Blocker: "reservation", Count: reservations}
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}
		return nil
	})
}
