package routes

import (
	"time"

	"github.com/shashiranjanraj/winkel/app/controllers"
	"github.com/shashiranjanraj/winkel/pkg/middleware"
	"github.com/shashiranjanraj/winkel/pkg/router"
)

// Controllers bundles everything RegisterAPI wires up.
type Controllers struct {
	Health *controllers.HealthController
	Auth   *controllers.AuthController
	Users  *controllers.UserController
	Items  *controllers.ItemController
	Orders *controllers.OrderController
	Admin  *controllers.AdminController
}

// RegisterAPI mounts every route. Guard ordering is encoded here: admin
// routes chain Authenticate before RequireAdmin, so an invalid token never
// reaches the role check.
func RegisterAPI(r *router.Router, c Controllers, guard *middleware.Auth) {
	r.Get("/health", "health", c.Health.Check)

	api := r.Group("/api")

	users := api.Group("/users")
	// The open endpoints take the brunt of credential stuffing; cap them.
	users.Post("/register", "users.register", c.Auth.Register, middleware.RateLimit(30, time.Minute))
	users.Post("/login", "users.login", c.Auth.Login, middleware.RateLimit(30, time.Minute))

	usersAuth := api.Group("/users", guard.Authenticate)
	usersAuth.Get("/", "users.list", c.Users.List, guard.RequireAdmin)
	usersAuth.Get("/{id}", "users.get", c.Users.Get)
	usersAuth.Put("/{id}", "users.update", c.Users.Update)
	usersAuth.Delete("/{id}", "users.delete", c.Users.Delete)

	items := api.Group("/items")
	items.Get("/", "items.list", c.Items.List)
	items.Get("/{id}", "items.get", c.Items.Get)

	itemsAdmin := api.Group("/items", guard.Authenticate, guard.RequireAdmin)
	itemsAdmin.Post("/", "items.create", c.Items.Create)
	itemsAdmin.Put("/{id}", "items.update", c.Items.Update)
	itemsAdmin.Delete("/{id}", "items.delete", c.Items.Delete)

	orders := api.Group("/orders", guard.Authenticate)
	orders.Post("/", "orders.create", c.Orders.Create)
	orders.Get("/", "orders.list", c.Orders.ListMine)
	orders.Get("/{id}", "orders.get", c.Orders.Get)

	admin := api.Group("/admin", middleware.RateLimit(10, time.Minute))
	admin.Post("/create-admin", "admin.create", c.Admin.CreateAdmin)
	admin.Put("/make-admin/{id}", "admin.promote", c.Admin.MakeAdmin)
}
