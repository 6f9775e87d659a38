// configs/session.go
package configs

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession fiber session store'unu oluşturur.
// Not: Varsayılan memory storage tek instance içindir; çoklu instance
// için SESSION_STORAGE ile harici bir storage seçilmelidir.
func SetupSession() *session.Store {
	cookieSecure := os.Getenv("APP_ENV") == "production"

	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:pano_session",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		CookieSameSite: "Lax",
	})
}
