package handlers // handlers/api paketi

import (
	"time"

	"pano.link/configs/configslog"
	"pano.link/models"
	"pano.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardHandler kart API uçları.
type CardHandler struct {
	service services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler() *CardHandler {
	return &CardHandler{service: services.NewCardService()}
}

type createCardRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	AssignedUserID *uint      `json:"assigned_user_id"`
	DueDate        *time.Time `json:"due_date"`
	Priority       string     `json:"priority"`
}

type updateCardRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	ColumnID       *uint      `json:"column_id"`
	AssignedUserID *uint      `json:"assigned_user_id"`
	DueDate        *time.Time `json:"due_date"`
	Priority       *string    `json:"priority"`
	OrderIndex     *int       `json:"order_index"`
}

// CreateCard sütuna yeni kart ekler.
// POST /api/columns/:id/cards
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	columnID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req createCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	card, err := h.service.CreateCard(c.UserContext(), userID, columnID, services.CardCreateInput{
		Title:          req.Title,
		Description:    req.Description,
		AssignedUserID: req.AssignedUserID,
		DueDate:        req.DueDate,
		Priority:       models.CardPriority(req.Priority),
	})
	if err != nil {
		configslog.Log.Error("API - CreateCard Error", zap.Uint("columnID", columnID), zap.Error(err))
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// ListCards sütunun kartlarını sıralı döndürür.
// GET /api/columns/:id/cards
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	columnID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cards, err := h.service.ListCards(c.UserContext(), columnID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(cards)
}

// UpdateCard kartı kısmi olarak günceller (taşıma, sıra ataması dahil).
// PUT /api/cards/:id
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req updateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	input := services.CardUpdateInput{
		Title:          req.Title,
		Description:    req.Description,
		ColumnID:       req.ColumnID,
		AssignedUserID: req.AssignedUserID,
		DueDate:        req.DueDate,
		OrderIndex:     req.OrderIndex,
	}
	if req.Priority != nil {
		p := models.CardPriority(*req.Priority)
		input.Priority = &p
	}

	card, err := h.service.UpdateCard(c.UserContext(), id, userID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(card)
}

// DeleteCard kartı ve bağımlılık kenarlarını siler.
// DELETE /api/cards/:id
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.DeleteCard(c.UserContext(), id, userID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
