package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

// respondError แปลง error จาก service เป็น HTTP response
// error ที่ไม่รู้จักตอบ 500 โดยไม่ส่งรายละเอียดออกไป
func respondError(c *fiber.Ctx, err error, action string) error {
	ctx := c.UserContext()

	switch {
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrImageNotFound):
		logger.WarnContext(ctx, action+" failed", "error", err)
		return utils.NotFoundResponse(c, capitalize(err.Error()))

	case errors.Is(err, services.ErrNotAnImage),
		errors.Is(err, services.ErrInvalidImageName):
		logger.WarnContext(ctx, action+" failed", "error", err)
		return utils.BadRequestResponse(c, capitalize(err.Error()))

	case errors.Is(err, services.ErrImageTooLarge):
		logger.WarnContext(ctx, action+" failed", "error", err)
		return utils.PayloadTooLargeResponse(c, capitalize(err.Error()))
	}

	logger.ErrorContext(ctx, action+" failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}

// parseID อ่าน path param ที่เป็นเลข id
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
