package routes

import (
	web_handlers "klinik.link/handlers/web"

	"github.com/gofiber/fiber/v2"
)

// registerWebRoutes tanıtım sayfası rotalarını tanımlar.
func registerWebRoutes(app *fiber.App) {
	siteHandler := web_handlers.NewSiteHandler()

	app.Get("/", siteHandler.HomePage)
}
