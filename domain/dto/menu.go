package dto

import "menu-api/domain/models"

// === Requests ===

// RegisterMenuRequest ฟอร์ม multipart ของ POST /api/menus (รูปส่งแยกในฟิลด์ image)
type RegisterMenuRequest struct {
	Name        string `form:"name" validate:"required,min=1,max=100"`
	Price       *int   `form:"price" validate:"required,gte=0"`
	Description string `form:"description" validate:"max=1000"`
	CategoryID  uint   `form:"categoryId" validate:"required"`
	Stock       int    `form:"stock"`
}

// === Responses ===

type MenuResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Price       int               `json:"price"`
	Description *string           `json:"description"`
	Orderable   string            `json:"orderable"`
	Stock       int               `json:"stock"`
	ImageURL    *string           `json:"imageUrl"`
	Category    *CategoryResponse `json:"category"`
}

// MenuDeletedEvent payload ของ event menu.deleted
type MenuDeletedEvent struct {
	ID uint `json:"id"`
}

// === Mappers ===

func MenuToMenuResponse(menu *models.Menu) *MenuResponse {
	if menu == nil {
		return nil
	}
	return &MenuResponse{
		ID:          menu.ID,
		Name:        menu.Name,
		Price:       menu.Price,
		Description: menu.Description,
		Orderable:   menu.Orderable,
		Stock:       menu.Stock,
		ImageURL:    menu.ImageURL,
		Category:    CategoryToCategoryResponse(menu.Category),
	}
}

func MenusToMenuResponses(menus []*models.Menu) []MenuResponse {
	responses := make([]MenuResponse, len(menus))
	for i, menu := range menus {
		responses[i] = *MenuToMenuResponse(menu)
	}
	return responses
}
