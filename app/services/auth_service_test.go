package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"github.com/shashiranjanraj/winkel/pkg/auth"
)

func newAuthService(e *testEnv) (*AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(e.users, tokens), tokens
}

func TestRegisterCreatesRegularUser(t *testing.T) {
	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	user, err := svc.Register(RegisterInput{
		Email:     "ash@winkel.nl",
		Password:  "pikachu123",
		FirstName: "Ash",
		LastName:  "Ketchum",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "", user.ID.String())
	assert.Equal(t, "ash@winkel.nl", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin, "registration must never grant admin")
	assert.NotEqual(t, "pikachu123", user.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(user.Password, "pikachu123"))
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	in := RegisterInput{Email: "ash@winkel.nl", Password: "pikachu123"}
	_, err := svc.Register(in)
	require.NoError(t, err)

	_, err = svc.Register(in)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	_, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "short"})
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
}

func TestLoginIssuesTokenForOwner(t *testing.T) {
	e := newTestEnv(t)
	svc, tokens := newAuthService(e)

	seeded := e.seedUser(t, "misty@winkel.nl", false)

	token, user, err := svc.Login(LoginInput{Email: "misty@winkel.nl", Password: "wachtwoord123"})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID.String(), claims.Subject)
	assert.Equal(t, "misty@winkel.nl", claims.Email)
}

func TestLoginDoesNotRevealAccountExistence(t *testing.T) {
	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	e.seedUser(t, "misty@winkel.nl", false)

	_, _, wrongPassword := svc.Login(LoginInput{Email: "misty@winkel.nl", Password: "verkeerd123"})
	_, _, unknownEmail := svc.Login(LoginInput{Email: "nobody@winkel.nl", Password: "verkeerd123"})

	assert.ErrorIs(t, wrongPassword, apperr.ErrUnauthenticated)
	assert.ErrorIs(t, unknownEmail, apperr.ErrUnauthenticated)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error(),
		"wrong password and unknown email must be indistinguishable")
}

func TestLoginDeactivatedAccountForbidden(t *testing.T) {
	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	user := e.seedUser(t, "brock@winkel.nl", false)
	user.IsActive = false
	require.NoError(t, e.users.Save(user))

	_, _, err := svc.Login(LoginInput{Email: "brock@winkel.nl", Password: "wachtwoord123"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
