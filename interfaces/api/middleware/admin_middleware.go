package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

// AdminOnly ตรวจ bearer token ที่ role = admin
// secret ว่าง = ไม่ป้องกัน (ผ่านทุก request)
func AdminOnly(secret string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		claims, err := utils.ParseAdminToken(token, secret)
		if err != nil {
			logger.WarnContext(ctx, "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		if !claims.IsAdmin() {
			logger.WarnContext(ctx, "Non-admin token rejected", "subject", claims.Subject, "role", claims.Role)
			return utils.ForbiddenResponse(c, "Admin role required")
		}

		c.Locals("admin", claims.Subject)
		return c.Next()
	}
}
