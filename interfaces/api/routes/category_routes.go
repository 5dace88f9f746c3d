package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")

	categories.Get("/", h.CategoryHandler.List)               // ดึง categories ทั้งหมด
	categories.Get("/:id", h.CategoryHandler.GetByID)         // ดึง category ตาม ID
	categories.Get("/:id/menus", h.CategoryHandler.ListMenus) // เมนูที่สั่งได้ใน category
}
