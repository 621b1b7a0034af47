package routes

import (
	api_handlers "klinik.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes yönetici giriş/çıkış rotalarını tanımlar.
func registerAuthRoutes(app *fiber.App) {
	authHandler := api_handlers.NewAuthHandler()

	adminGroup := app.Group("/admin")
	adminGroup.Post("/auth", authHandler.Login)    // POST /admin/auth
	adminGroup.Post("/logout", authHandler.Logout) // POST /admin/logout
}
