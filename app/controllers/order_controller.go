package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/winkel/app/services"
	"github.com/shashiranjanraj/winkel/pkg/logger"
	"github.com/shashiranjanraj/winkel/pkg/middleware"
	"github.com/shashiranjanraj/winkel/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Create handles POST /orders/.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		response.Unauthorized(w)
		return
	}

	var in services.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := c.service.Create(user.ID, in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order created",
		"order_id", order.ID,
		"user_id", user.ID,
		"total", order.TotalAmount,
		"lines", len(order.Items),
	)
	response.Created(w, order)
}

// ListMine handles GET /orders/: the caller's own orders, newest first.
func (c *OrderController) ListMine(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		response.Unauthorized(w)
		return
	}

	orders, err := c.service.ListMine(user.ID)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, orders)
}

// Get handles GET /orders/{id}, readable by the owner or an admin.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		response.Unauthorized(w)
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	order, err := c.service.Get(user.ID, user.IsAdmin, id)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, order)
}
