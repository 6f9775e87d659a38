package handlers // handlers/api paketi

import (
	"pano.link/configs/configslog"
	"pano.link/pkg/queryparams"
	"pano.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BoardHandler pano API uçları.
type BoardHandler struct {
	service services.IBoardService
}

// NewBoardHandler yeni bir BoardHandler örneği oluşturur.
func NewBoardHandler() *BoardHandler {
	return &BoardHandler{service: services.NewBoardService()}
}

type createBoardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ProjectID   *uint  `json:"project_id"`
}

type updateBoardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ProjectID   *uint   `json:"project_id"`
}

// ListBoards kullanıcının panolarını sayfalayarak listeler.
// GET /api/boards
func (h *BoardHandler) ListBoards(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListBoards: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetBoardsForUserPaginated(c.UserContext(), userID, params)
	if err != nil {
		configslog.Log.Error("API - ListBoards Error", zap.Uint("userID", userID), zap.Error(err))
		return serviceError(c, err)
	}
	return c.JSON(result)
}

// CreateBoard yeni pano oluşturur.
// POST /api/boards
func (h *BoardHandler) CreateBoard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}

	var req createBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	board, err := h.service.CreateBoard(c.UserContext(), userID, req.Name, req.Description, req.ProjectID)
	if err != nil {
		configslog.Log.Error("API - CreateBoard Error", zap.Uint("userID", userID), zap.Error(err))
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(board)
}

// GetBoard panoyu sıralı sütunları ve kartlarıyla döndürür.
// GET /api/boards/:id
func (h *BoardHandler) GetBoard(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	board, err := h.service.GetBoardByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(board)
}

// UpdateBoard pano alanlarını kısmi olarak günceller.
// PUT /api/boards/:id
func (h *BoardHandler) UpdateBoard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req updateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	input := services.BoardUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	}
	if err := h.service.UpdateBoard(c.UserContext(), id, userID, input); err != nil {
		return serviceError(c, err)
	}

	board, err := h.service.GetBoardByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(board)
}

// DeleteBoard panoyu ve altındaki her şeyi siler.
// DELETE /api/boards/:id
func (h *BoardHandler) DeleteBoard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.DeleteBoard(c.UserContext(), id, userID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
