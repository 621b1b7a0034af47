package routes

import (
	api_handlers "klinik.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerVapiRoutes sesli asistan entegrasyonunun webhook rotalarını tanımlar.
func registerVapiRoutes(app *fiber.App) {
	vapiHandler := api_handlers.NewVapiHandler()

	app.Post("/vapi", vapiHandler.HandleWebhook) // POST /vapi
	app.Get("/vapi", vapiHandler.GetClinicInfo)  // GET /vapi?doctor=&date=
}
