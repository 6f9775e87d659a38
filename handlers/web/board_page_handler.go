package handlers // handlers/web paketi

import (
	"errors"

	"pano.link/configs/configslog"
	"pano.link/pkg/queryparams"
	"pano.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BoardPageHandler pano sayfalarını render eder. Sayfalar sadece iskelettir;
// sütun/kart etkileşimi istemci tarafında /api uçlarıyla yapılır.
type BoardPageHandler struct {
	service services.IBoardService
}

// NewBoardPageHandler yeni bir BoardPageHandler örneği oluşturur.
func NewBoardPageHandler() *BoardPageHandler {
	return &BoardPageHandler{service: services.NewBoardService()}
}

// ListBoards kullanıcının pano listesi sayfası.
// GET /panel/boards
func (h *BoardPageHandler) ListBoards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetBoardsForUserPaginated(c.UserContext(), userID, params)
	renderData := fiber.Map{
		"Title":    "Panolarım",
		"Result":   result,
		"Params":   params,
		"PrevPage": params.Page - 1,
		"NextPage": params.Page + 1,
	}
	if err != nil {
		configslog.Log.Error("Panel - ListBoards Error", zap.Uint("userID", userID), zap.Error(err))
		renderData["Error"] = "Panolar listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{}
	}
	return c.Render("boards/list", renderData, "layouts/main")
}

// ShowBoard tek pano görünümü (Kanban iskeleti).
// GET /panel/boards/:id
func (h *BoardPageHandler) ShowBoard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/panel/boards")
	}

	board, err := h.service.GetBoardByID(c.UserContext(), uint(id))
	if err != nil {
		if !errors.Is(err, services.ErrBoardNotFound) {
			configslog.Log.Error("Panel - ShowBoard Error", zap.Int("id", id), zap.Error(err))
		}
		return c.Redirect("/panel/boards")
	}

	return c.Render("boards/show", fiber.Map{
		"Title": board.Name,
		"Board": board,
	}, "layouts/main")
}
