package routes

import (
	api_handlers "pano.link/handlers/api"
	"pano.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes /api altındaki Kanban JSON uçlarını tanımlar.
// Sürükle-bırak arayüzü bu uçları kullanır.
func registerAPIRoutes(app *fiber.App) {
	boardHandler := api_handlers.NewBoardHandler()
	columnHandler := api_handlers.NewColumnHandler()
	cardHandler := api_handlers.NewCardHandler()
	dependencyHandler := api_handlers.NewDependencyHandler()

	apiGroup := app.Group("/api")
	apiGroup.Use(middlewares.AuthMiddleware)

	// --- Panolar ---
	apiGroup.Get("/boards", boardHandler.ListBoards)         // GET /api/boards
	apiGroup.Post("/boards", boardHandler.CreateBoard)       // POST /api/boards
	apiGroup.Get("/boards/:id", boardHandler.GetBoard)       // GET /api/boards/{id}
	apiGroup.Put("/boards/:id", boardHandler.UpdateBoard)    // PUT /api/boards/{id}
	apiGroup.Delete("/boards/:id", boardHandler.DeleteBoard) // DELETE /api/boards/{id} (cascade)

	// --- Sütunlar ---
	apiGroup.Post("/boards/:id/columns", columnHandler.CreateColumn) // POST /api/boards/{id}/columns
	apiGroup.Get("/boards/:id/columns", columnHandler.ListColumns)   // GET /api/boards/{id}/columns
	apiGroup.Put("/columns/:id", columnHandler.UpdateColumn)         // PUT /api/columns/{id}
	apiGroup.Delete("/columns/:id", columnHandler.DeleteColumn)      // DELETE /api/columns/{id} (cascade)

	// --- Kartlar ---
	apiGroup.Post("/columns/:id/cards", cardHandler.CreateCard) // POST /api/columns/{id}/cards
	apiGroup.Get("/columns/:id/cards", cardHandler.ListCards)   // GET /api/columns/{id}/cards
	apiGroup.Put("/cards/:id", cardHandler.UpdateCard)          // PUT /api/cards/{id}
	apiGroup.Delete("/cards/:id", cardHandler.DeleteCard)       // DELETE /api/cards/{id} (kenarlar dahil)

	// --- Kart Bağımlılıkları ---
	apiGroup.Post("/cards/:id/dependencies", dependencyHandler.AddDependency)   // POST /api/cards/{id}/dependencies
	apiGroup.Get("/cards/:id/dependencies", dependencyHandler.ListDependencies) // GET /api/cards/{id}/dependencies
	apiGroup.Delete("/dependencies/:id", dependencyHandler.RemoveDependency)    // DELETE /api/dependencies/{id}
}
