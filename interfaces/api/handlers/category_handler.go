package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	menuService     services.MenuService
}

func NewCategoryHandler(categoryService services.CategoryService, menuService services.MenuService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		menuService:     menuService,
	}
}

// List ดึง categories ทั้งหมด
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		return respondError(c, err, "List categories")
	}

	return utils.SuccessResponse(c, dto.CategoriesToCategoryResponses(categories))
}

// GetByID ดึง category ตาม ID
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err, "Get category")
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// ListMenus เมนูที่สั่งได้ใน category นี้
func (h *CategoryHandler) ListMenus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	menus, err := h.menuService.ListByCategory(ctx, id)
	if err != nil {
		return respondError(c, err, "List category menus")
	}

	return utils.SuccessResponse(c, dto.MenusToMenuResponses(menus))
}
