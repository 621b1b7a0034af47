package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Oturum anahtarları.
const SessionKeyIsAdmin = "is_admin"

// SessionStart locals'a konan store üzerinden isteğin oturumunu açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// IsAdminSession isteğin geçerli bir yönetici oturumu taşıyıp taşımadığını
// söyler.
func IsAdminSession(c *fiber.Ctx) bool {
	sess, err := SessionStart(c)
	if err != nil {
		return false
	}
	isAdmin, ok := sess.Get(SessionKeyIsAdmin).(bool)
	return ok && isAdmin
}
