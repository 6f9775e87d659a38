package routes

import (
	web_handlers "pano.link/handlers/web"
	"pano.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerWebRoutes /panel altındaki pano sayfalarını tanımlar.
func registerWebRoutes(app *fiber.App) {
	boardPageHandler := web_handlers.NewBoardPageHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	panelGroup.Get("/boards", boardPageHandler.ListBoards)    // GET /panel/boards
	panelGroup.Get("/boards/:id", boardPageHandler.ShowBoard) // GET /panel/boards/{id}
}
