package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/winkel/app/services"
	"github.com/shashiranjanraj/winkel/pkg/logger"
	"github.com/shashiranjanraj/winkel/pkg/response"
)

type ItemController struct {
	service *services.CatalogService
}

func NewItemController(service *services.CatalogService) *ItemController {
	return &ItemController{service: service}
}

// List handles GET /items/. Public, active items only.
func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	items, err := c.service.List(skip, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, items)
}

// Get handles GET /items/{id}. Public.
func (c *ItemController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}
	item, err := c.service.Get(id)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, item)
}

// Create handles POST /items/. Admin only, enforced by the route.
func (c *ItemController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := c.service.Create(in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("item created", "item_id", item.ID, "name", item.Name)
	response.Created(w, item)
}

// Update handles PUT /items/{id}. Admin only.
func (c *ItemController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var patch services.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := c.service.Update(id, patch)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, item)
}

// Delete handles DELETE /items/{id}. Admin only.
func (c *ItemController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}
	if err := c.service.Delete(id); err != nil {
		response.AppError(w, err)
		return
	}
	response.NoContent(w)
}
