package services

import (
	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"github.com/shashiranjanraj/winkel/pkg/auth"
	"github.com/shashiranjanraj/winkel/pkg/validate"
)

// UserPatch is a partial update: only non-nil fields are applied. IsAdmin
// is absent on purpose: the admin flag only changes through the gated
// provisioning path.
type UserPatch struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsActive  *bool   `json:"is_active"`
}

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns a page of users via skip/limit.
func (s *UserService) List(skip, limit int) ([]models.User, error) {
	return s.users.List(skip, clampLimit(limit))
}

// Get returns one user by id.
func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(id)
}

// Update applies the patch field by field; absent fields keep their value.
func (s *UserService) Update(id uuid.UUID, patch UserPatch) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if !validate.Email(*patch.Email) {
			return nil, apperr.ValidationField("email", "The email must be a valid email address.")
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		if len(*patch.Password) < 8 {
			return nil, apperr.ValidationField("password", "The password must be at least 8 characters.")
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.Password = hash
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user; the store cascades to orders and order items.
func (s *UserService) Delete(id uuid.UUID) error {
	return s.users.Delete(id)
}

const maxPageSize = 100

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
