package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/winkel/app/services"
	"github.com/shashiranjanraj/winkel/pkg/logger"
	"github.com/shashiranjanraj/winkel/pkg/response"
)

type AdminController struct {
	service *services.AdminService
}

func NewAdminController(service *services.AdminService) *AdminController {
	return &AdminController{service: service}
}

// CreateAdmin handles POST /admin/create-admin. Gated by the shared secret
// in the body, not by a session token.
func (c *AdminController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var in services.CreateAdminInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := c.service.CreateAdmin(in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("admin created", "user_id", user.ID)
	response.Created(w, user)
}

// MakeAdmin handles PUT /admin/make-admin/{id}.
func (c *AdminController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var body struct {
		SecretKey string `json:"secret_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := c.service.PromoteToAdmin(id, body.SecretKey)
	if err != nil {
		response.AppError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user promoted to admin", "user_id", user.ID)
	response.Success(w, user)
}
