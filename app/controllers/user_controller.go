package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/services"
	"github.com/shashiranjanraj/winkel/pkg/middleware"
	"github.com/shashiranjanraj/winkel/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// List handles GET /users/ (admin only, enforced by the route).
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	users, err := c.service.List(skip, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, users)
}

// Get handles GET /users/{id}. Callers may fetch themselves; admins anyone.
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}
	if !selfOrAdmin(r, id) {
		response.Forbidden(w)
		return
	}

	user, err := c.service.Get(id)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, user)
}

// Update handles PUT /users/{id}. The patch cannot touch the admin flag.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}
	if !selfOrAdmin(r, id) {
		response.Forbidden(w)
		return
	}

	var patch services.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := c.service.Update(id, patch)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, user)
}

// Delete handles DELETE /users/{id}.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}
	if !selfOrAdmin(r, id) {
		response.Forbidden(w)
		return
	}

	if err := c.service.Delete(id); err != nil {
		response.AppError(w, err)
		return
	}
	response.NoContent(w)
}

// selfOrAdmin allows a user to act on their own record, and admins on any.
func selfOrAdmin(r *http.Request, target uuid.UUID) bool {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		return false
	}
	return user.IsAdmin || user.ID == target
}
