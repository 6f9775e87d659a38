package routes

import (
	"pano.link/configs"
	"pano.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())

	// --- Rota Grupları ---
	registerAuthRoutes(app) // /auth rotaları
	registerAPIRoutes(app)  // /api rotaları (Kanban JSON uçları)
	registerWebRoutes(app)  // /panel rotaları (pano sayfaları)

	// --- Kök URL ("/") Yönlendirmesi ---
	app.Get("/", rootRedirector)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session'ı açar ve temel locals'ları doldurur.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if isSystem, sysErr := utils.GetIsSystemFromSession(sess); sysErr == nil {
			c.Locals("isSystem", isSystem)
		}
		if userName, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

// rootRedirector giriş durumuna göre yönlendirir.
func rootRedirector(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/boards", fiber.StatusFound)
	}
	return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
}

// notFoundHandler eşleşmeyen rotalar için içerik tipine göre cevap üretir.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/main")
	}
}
