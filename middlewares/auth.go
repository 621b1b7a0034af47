package middlewares

import (
	"klinik.link/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware yönetici oturumu olmayan istekleri 401 ile keser.
// Randevu güncelleme ve silme uçları bu middleware'in arkasındadır.
func AdminMiddleware(c *fiber.Ctx) error {
	if !utils.IsAdminSession(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false, "error": "Bu işlem için giriş yapmalısınız",
		})
	}
	return c.Next()
}
