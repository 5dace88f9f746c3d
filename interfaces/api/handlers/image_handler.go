package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"menu-api/domain/services"
)

type ImageHandler struct {
	imageService services.ImageService
}

func NewImageHandler(imageService services.ImageService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
	}
}

// Serve ส่งรูปแบบ inline
func (h *ImageHandler) Serve(c *fiber.Ctx) error {
	return h.send(c, false)
}

// Download ส่งรูปเป็นไฟล์แนบ
func (h *ImageHandler) Download(c *fiber.Ctx) error {
	return h.send(c, true)
}

func (h *ImageHandler) send(c *fiber.Ctx, attachment bool) error {
	ctx := c.UserContext()

	image, err := h.imageService.Open(ctx, c.Params("filename"))
	if err != nil {
		return respondError(c, err, "Open image")
	}

	c.Set(fiber.HeaderContentType, image.ContentType)
	if attachment {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", image.Name))
	}

	// fasthttp ปิด Content ให้หลังส่งเสร็จ
	return c.SendStream(image.Content, int(image.Size))
}
