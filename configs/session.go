package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession yönetici oturumları için sunucu taraflı session store oluşturur.
// Oturum cookie üzerinden taşınır; istemci tarafında yetki bilgisi tutulmaz.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     12 * time.Hour,
		KeyLookup:      "cookie:klinik_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
