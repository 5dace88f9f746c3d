package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
	"menu-api/interfaces/api/middleware"
)

// SetupMenuRoutes adminSecret ว่าง = POST/DELETE เปิดให้ทุกคน
func SetupMenuRoutes(api fiber.Router, h *handlers.Handlers, adminSecret string) {
	menus := api.Group("/menus")
	adminOnly := middleware.AdminOnly(adminSecret)

	// Public routes
	menus.Get("/", h.MenuHandler.List)
	menus.Get("/:id", h.MenuHandler.GetByID)

	// Admin routes (ผูก guard ราย route, Group จะกลายเป็น Use ทั้ง prefix)
	menus.Post("/", adminOnly, h.MenuHandler.Register)
	menus.Delete("/:id", adminOnly, h.MenuHandler.Delete)
}
