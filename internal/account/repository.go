package account

import (
	"errors"
	"log"
	"strings"

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

// GetRoleByName resolves a role name ignoring case. Returns (nil, nil)
// when no such role exists.
func (r *Repository) GetRoleByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("UPPER(name) = ?", strings.ToUpper(name)).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *Repository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// TopStudentsByCoins returns the highest-balance STUDENT accounts.
// Ties are broken by id ascending so the order is stable.
func (r *Repository) TopStudentsByCoins(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("UPPER(roles.name) = ?", models.RoleStudent).
		Order("users.coins DESC, users.id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		log.Printf("Error querying top students: %v", err)
		return nil, err
	}
	return users, nil
}
