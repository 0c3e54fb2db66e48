package repositories

import (
	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user record. A duplicate email surfaces as Conflict
// via the store's unique constraint, closing the check-then-insert race.
func (r *UserRepository) Create(user *models.User) error {
	return translate(r.db.Create(user).Error, "user")
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

// List returns users with skip/limit pagination.
func (r *UserRepository) List(skip, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Offset(skip).Limit(limit).Order("created_at").Find(&users).Error
	if err != nil {
		return nil, translate(err, "user")
	}
	return users, nil
}

// Save persists changes to an existing user.
func (r *UserRepository) Save(user *models.User) error {
	return translate(r.db.Save(user).Error, "user")
}

// Delete removes a user; orders and order items follow via ON DELETE CASCADE.
func (r *UserRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user")
	}
	return nil
}
