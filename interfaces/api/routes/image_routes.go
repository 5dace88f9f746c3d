package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
)

func SetupImageRoutes(api fiber.Router, h *handlers.Handlers) {
	images := api.Group("/images")

	images.Get("/download/:filename", h.ImageHandler.Download)
	images.Get("/:filename", h.ImageHandler.Serve)
}
