// Package services holds the domain rules. Services are constructed with
// their repositories and configuration; they return apperr-classified errors
// and never touch HTTP.
package services

import (
	"errors"

	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"github.com/shashiranjanraj/winkel/pkg/auth"
	"github.com/shashiranjanraj/winkel/pkg/validate"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"nullable,max=100"`
	LastName  string `json:"last_name"  validate:"nullable,max=100"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	users  *repositories.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users *repositories.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a regular (non-admin) user. There is deliberately no
// existence pre-check: the unique constraint on email decides, so two
// concurrent registrations can never both succeed.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, apperr.Validation(errs)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Email:     in.Email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password collapse into the same Unauthenticated error so the
// response shape never reveals whether an account exists.
func (s *AuthService) Login(in LoginInput) (string, *models.User, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return "", nil, apperr.Validation(errs)
	}

	user, err := s.users.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, apperr.Unauthenticated("invalid email or password")
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.Password, in.Password) {
		return "", nil, apperr.Unauthenticated("invalid email or password")
	}
	if !user.IsActive {
		return "", nil, apperr.Forbidden("account deactivated")
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, user, nil
}
