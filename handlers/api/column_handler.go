package handlers // handlers/api paketi

import (
	"pano.link/configs/configslog"
	"pano.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ColumnHandler pano sütunu API uçları.
type ColumnHandler struct {
	service services.IColumnService
}

// NewColumnHandler yeni bir ColumnHandler örneği oluşturur.
func NewColumnHandler() *ColumnHandler {
	return &ColumnHandler{service: services.NewColumnService()}
}

type createColumnRequest struct {
	Name string `json:"name"`
}

type updateColumnRequest struct {
	Name       *string `json:"name"`
	OrderIndex *int    `json:"order_index"`
}

// CreateColumn panoya yeni sütun ekler.
// POST /api/boards/:id/columns
func (h *ColumnHandler) CreateColumn(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	boardID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req createColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	column, err := h.service.CreateColumn(c.UserContext(), userID, boardID, req.Name)
	if err != nil {
		configslog.Log.Error("API - CreateColumn Error", zap.Uint("boardID", boardID), zap.Error(err))
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(column)
}

// ListColumns panonun sütunlarını sıralı döndürür.
// GET /api/boards/:id/columns
func (h *ColumnHandler) ListColumns(c *fiber.Ctx) error {
	boardID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	columns, err := h.service.ListColumns(c.UserContext(), boardID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(columns)
}

// UpdateColumn sütunu kısmi olarak günceller (yeniden adlandırma,
// sürükle-bırak sıra ataması).
// PUT /api/columns/:id
func (h *ColumnHandler) UpdateColumn(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req updateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	column, err := h.service.UpdateColumn(c.UserContext(), id, userID, services.ColumnUpdateInput{
		Name:       req.Name,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(column)
}

// DeleteColumn sütunu ve altındaki kartları siler.
// DELETE /api/columns/:id
func (h *ColumnHandler) DeleteColumn(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.DeleteColumn(c.UserContext(), id, userID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
