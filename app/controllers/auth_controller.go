package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/winkel/app/services"
	"github.com/shashiranjanraj/winkel/pkg/logger"
	"github.com/shashiranjanraj/winkel/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register handles POST /users/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := c.service.Register(in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "user_id", user.ID, "email", user.Email)
	response.Created(w, user)
}

// Login handles POST /users/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	token, user, err := c.service.Login(in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}
