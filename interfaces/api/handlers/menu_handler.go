package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// List เมนูที่สั่งได้ทั้งหมด
func (h *MenuHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	menus, err := h.menuService.ListOrderable(ctx)
	if err != nil {
		return respondError(c, err, "List menus")
	}

	return utils.SuccessResponse(c, dto.MenusToMenuResponses(menus))
}

func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid menu ID")
	}

	menu, err := h.menuService.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err, "Get menu")
	}

	return utils.SuccessResponse(c, dto.MenuToMenuResponse(menu))
}

// Register สร้างเมนูจาก multipart form (image ไม่บังคับ)
func (h *MenuHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterMenuRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	// ไม่มีฟิลด์ image = ไม่มีรูป
	var image *multipart.FileHeader
	if file, err := c.FormFile("image"); err == nil {
		image = file
	}

	menu, err := h.menuService.Register(ctx, &req, image)
	if err != nil {
		return respondError(c, err, "Menu registration")
	}

	return utils.CreatedResponse(c, dto.MenuToMenuResponse(menu))
}

func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid menu ID")
	}

	if err := h.menuService.Delete(ctx, id); err != nil {
		return respondError(c, err, "Menu delete")
	}

	return utils.MessageResponse(c, "Menu deleted successfully")
}
