package routes

import (
	auth_handlers "pano.link/handlers/auth" // İsim çakışmasını önlemek için alias
	"pano.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes /auth altındaki giriş/çıkış rotalarını tanımlar.
func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	authGroup.Get("/login", authHandler.ShowLogin)
	authGroup.Post("/login", authHandler.Login)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.AuthMiddleware)
	userRoutes.Get("/logout", authHandler.Logout)
	userRoutes.Post("/logout", authHandler.Logout)
}
