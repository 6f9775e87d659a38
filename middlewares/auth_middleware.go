// middlewares/auth_middleware.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware giriş yapılmış bir oturum gerektirir.
// Session middleware'i userID'yi locals'a koymuş olmalıdır.
// API istekleri 401 alır, sayfa istekleri login'e yönlendirilir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if ok && userID != 0 {
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
}
