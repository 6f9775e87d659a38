// utils/session.go
package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStart locals'a konmuş store üzerinden isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// GetUserIDFromSession session'daki kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	userID, ok := sess.Get("user_id").(uint)
	if !ok || userID == 0 {
		return 0, errors.New("session'da kullanıcı ID yok")
	}
	return userID, nil
}

// GetIsSystemFromSession session'daki sistem kullanıcısı bayrağını okur.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	isSystem, ok := sess.Get("is_system").(bool)
	if !ok {
		return false, errors.New("session'da is_system yok")
	}
	return isSystem, nil
}

// SetUserSession giriş sonrası session'a kullanıcı bilgilerini yazar.
func SetUserSession(sess *session.Session, userID uint, userName string, isSystem bool) error {
	sess.Set("user_id", userID)
	sess.Set("user_name", userName)
	sess.Set("is_system", isSystem)
	return sess.Save()
}

// DestroySession oturumu sonlandırır.
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
