package handlers // handlers/api paketi

import (
	"pano.link/configs/configslog"
	"pano.link/models"
	"pano.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DependencyHandler kart bağımlılığı API uçları.
type DependencyHandler struct {
	service services.IDependencyService
}

// NewDependencyHandler yeni bir DependencyHandler örneği oluşturur.
func NewDependencyHandler() *DependencyHandler {
	return &DependencyHandler{service: services.NewDependencyService()}
}

type createDependencyRequest struct {
	DependsOnCardID uint `json:"depends_on_card_id"`
}

// dependencyResponse kenarı kart başlıklarıyla birlikte sunar.
type dependencyResponse struct {
	ID                 uint   `json:"id"`
	CardID             uint   `json:"card_id"`
	DependsOnCardID    uint   `json:"depends_on_card_id"`
	CardTitle          string `json:"card_title,omitempty"`
	DependsOnCardTitle string `json:"depends_on_card_title,omitempty"`
}

func toDependencyResponse(edge models.CardDependency) dependencyResponse {
	resp := dependencyResponse{
		ID:              edge.ID,
		CardID:          edge.CardID,
		DependsOnCardID: edge.DependsOnCardID,
	}
	if edge.Card != nil {
		resp.CardTitle = edge.Card.Title
	}
	if edge.DependsOnCard != nil {
		resp.DependsOnCardTitle = edge.DependsOnCard.Title
	}
	return resp
}

// AddDependency "kart :id, depends_on_card_id kartına bağımlıdır" kenarı ekler.
// POST /api/cards/:id/dependencies
func (h *DependencyHandler) AddDependency(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	cardID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req createDependencyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	edge, err := h.service.AddDependency(c.UserContext(), userID, cardID, req.DependsOnCardID)
	if err != nil {
		configslog.Log.Warn("API - AddDependency reddedildi",
			zap.Uint("cardID", cardID), zap.Uint("dependsOnCardID", req.DependsOnCardID), zap.Error(err))
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDependencyResponse(*edge))
}

// ListDependencies kartın bağımlılıklarını kart başlıklarıyla döndürür.
// GET /api/cards/:id/dependencies
func (h *DependencyHandler) ListDependencies(c *fiber.Ctx) error {
	cardID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	edges, err := h.service.ListDependencies(c.UserContext(), cardID)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dependencyResponse, 0, len(edges))
	for _, edge := range edges {
		resp = append(resp, toDependencyResponse(edge))
	}
	return c.JSON(resp)
}

// RemoveDependency kenarı siler.
// DELETE /api/dependencies/:id
func (h *DependencyHandler) RemoveDependency(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	edgeID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.RemoveDependency(c.UserContext(), userID, edgeID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
