package handlers // handlers/api paketi

import (
	"errors"

	"pano.link/services"

	"github.com/gofiber/fiber/v2"
)

// errorStatus servis hatasını HTTP durum koduna çevirir.
// NotFound -> 404, tekrar -> 409, self-loop/döngü -> 422, girdi -> 400.
// Taksonomide olmayan hatalar 500 olarak döner; çağıran kısmi etki varsaymamalıdır.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrBoardNotFound),
		errors.Is(err, services.ErrColumnNotFound),
		errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrDependencyNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateDependency):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrSelfDependency),
		errors.Is(err, services.ErrDependencyCycle):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrBoardForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrBrdInvalidInput),
		errors.Is(err, services.ErrColInvalidInput),
		errors.Is(err, services.ErrCrdInvalidInput),
		errors.Is(err, services.ErrDepInvalidInput),
		errors.Is(err, services.ErrCardInvalidPriority):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// serviceError servis hatasını JSON cevaba çevirir.
// 500 durumunda iç hata detayı istemciye sızdırılmaz.
func serviceError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "beklenmeyen bir hata oluştu"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// currentUserID session middleware'inin koyduğu kullanıcı ID'sini okur.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok && userID != 0
}

// parseIDParam :id benzeri rota parametresini uint'e çevirir.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("geçersiz ID")
	}
	return uint(id), nil
}
