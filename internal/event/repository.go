package event

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"quiz-platform/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetUserByEmail returns (nil, nil) when no account has that email.
func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("Error finding user by email %s: %v", email, err)
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateEvent(event *models.Event) error {
	err := r.db.Create(event).Error
	if err != nil {
		log.Printf("Error creating event %q: %v", event.Title, err)
		return err
	}
	return nil
}

func (r *Repository) GetAllEvents() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("id ASC").Find(&events).Error
	if err != nil {
		log.Printf("Error listing events: %v", err)
		return nil, err
	}
	return events, nil
}
