package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"polyglot-backend/models"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser inserts a new user, assigning its id
func (d *UserDAO) CreateUser(user *models.User) error {
	user.ID = uuid.New()
	return d.db.Create(user).Error
}

// GetUserByID retrieves a user by id
func (d *UserDAO) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (d *UserDAO) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
