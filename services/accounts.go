package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/orgchathq/orgchat-api/models"
	"gorm.io/gorm"
)

// AccountsService manages user registration and login credentials
type AccountsService struct {
	DB *gorm.DB
}

// GetUserByEmail gets the user with the provided email address
func (s *AccountsService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("email = ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID gets the user with the provided id
func (s *AccountsService) GetUserByID(id uint64) (*models.User, error) {
	var user models.User
	err := s.DB.
		First(&user, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Register creates a new user with the given credentials. The email must not
// already belong to a user.
func (s *AccountsService) Register(email, password, name string) (*models.User, error) {

	// Normalize the email before anything else
	email = strings.TrimSpace(strings.ToLower(email))

	// Check if a user already exists with the email. The unique index on the
	// email column catches the race between two concurrent registrations.
	existing, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// Create the user with a hashed password
	user := models.User{
		Email:       email,
		CreatedDate: time.Now(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		user.Name = sql.NullString{Valid: true, String: name}
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil

}

// FindByLogin finds a user with the provided login credentials. It returns
// nil for an unknown email and for a bad password alike, so callers cannot
// tell the two cases apart.
func (s *AccountsService) FindByLogin(email, password string) (*models.User, error) {

	// Find the user with the email
	user, err := s.GetUserByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	// Verify the password
	if !user.VerifyPassword(password) {
		return nil, nil
	}

	// Return the user
	return user, nil

}
