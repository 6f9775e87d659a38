package handlers // handlers/auth paketi

import (
	"errors"

	"pano.link/configs/configslog"
	"pano.link/repositories"
	"pano.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş/çıkış işlemleri. Kullanıcı yönetimi (kayıt, şifre
// sıfırlama, roller) bu çekirdeğin kapsamı dışındadır.
type AuthHandler struct {
	userRepo repositories.IUserRepository
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{userRepo: repositories.NewUserRepository()}
}

// ShowLogin giriş formunu gösterir.
// GET /auth/login
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/boards")
	}
	return c.Render("auth/login", fiber.Map{"Title": "Giriş Yap"}, "layouts/main")
}

// Login e-posta/şifre doğrular ve session açar.
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).Render("auth/login", fiber.Map{
			"Title": "Giriş Yap",
			"Error": "E-posta ve şifre zorunludur.",
		}, "layouts/main")
	}

	user, err := h.userRepo.FindByEmail(c.UserContext(), email)
	if err != nil || !user.IsActive || !user.CheckPassword(password) {
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Login: kullanıcı sorgusu hatası", zap.String("email", email), zap.Error(err))
		}
		// Hesap var/yok bilgisi sızdırılmaz.
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title": "Giriş Yap",
			"Error": "E-posta veya şifre hatalı.",
		}, "layouts/main")
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Oturum başlatılamadı.")
	}
	if err := utils.SetUserSession(sess, user.ID, user.Name, user.IsSystem); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Oturum başlatılamadı.")
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: ID %d", user.ID)
	return c.Redirect("/panel/boards", fiber.StatusFound)
}

// Logout oturumu sonlandırır.
// GET|POST /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = utils.DestroySession(sess)
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
