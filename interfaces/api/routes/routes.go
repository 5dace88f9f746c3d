package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
)

// Options ค่าที่ routes ต้องใช้จาก config
type Options struct {
	AdminJWTSecret string
	StaticDir      string // ว่าง = ไม่เสิร์ฟ frontend
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	SetupHealthRoutes(app, h)

	api := app.Group("/api")

	SetupCategoryRoutes(api, h)
	SetupMenuRoutes(api, h, opts.AdminJWTSecret)
	SetupImageRoutes(api, h)

	// frontend ต้องลงทะเบียนหลัง /api
	if opts.StaticDir != "" {
		app.Static("/", opts.StaticDir, fiber.Static{
			Index:    "index.html",
			Compress: true,
		})
	}
}
