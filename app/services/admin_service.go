package services

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"github.com/shashiranjanraj/winkel/pkg/auth"
	"github.com/shashiranjanraj/winkel/pkg/validate"
)

// AdminService is the out-of-band bootstrap path: both operations are gated
// by a shared secret presented in the request, not by a session token.
type AdminService struct {
	users  *repositories.UserRepository
	secret string
}

func NewAdminService(users *repositories.UserRepository, secret string) *AdminService {
	return &AdminService{users: users, secret: secret}
}

// CreateAdminInput is the create-admin payload.
type CreateAdminInput struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	SecretKey string `json:"secret_key" validate:"required"`
}

// CreateAdmin creates a user with the admin flag already set. The secret is
// checked first and in constant time, so the response shape and timing
// never reveal whether the secret or the payload was the problem.
func (s *AdminService) CreateAdmin(in CreateAdminInput) (*models.User, error) {
	if !s.secretMatches(in.SecretKey) {
		return nil, apperr.Forbidden("invalid secret key")
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, apperr.Validation(errs)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Email:    in.Email,
		Password: hash,
		IsActive: true,
		IsAdmin:  true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// PromoteToAdmin flips is_admin on an existing user. A wrong secret fails
// before the user is even looked up, so it can never mutate anything and
// never leaks whether the user exists.
func (s *AdminService) PromoteToAdmin(id uuid.UUID, presentedSecret string) (*models.User, error) {
	if !s.secretMatches(presentedSecret) {
		return nil, apperr.Forbidden("invalid secret key")
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = true
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) secretMatches(presented string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(s.secret)) == 1
}
