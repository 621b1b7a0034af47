package routes

import (
	api_handlers "klinik.link/handlers/api"
	"klinik.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAppointmentRoutes /appointments altındaki JSON API rotalarını tanımlar.
// Listeleme ve oluşturma herkese açıktır; güncelleme ve silme yönetici
// oturumu gerektirir.
func registerAppointmentRoutes(app *fiber.App) {
	appointmentHandler := api_handlers.NewAppointmentHandler()

	group := app.Group("/appointments")
	group.Get("/", appointmentHandler.ListAppointments)        // GET /appointments?status=&date=
	group.Post("/", appointmentHandler.CreateAppointment)      // POST /appointments
	group.Get("/:id", appointmentHandler.GetAppointment)       // GET /appointments/{id}

	adminGroup := group.Group("", middlewares.AdminMiddleware)
	adminGroup.Patch("/:id", appointmentHandler.UpdateAppointment)  // PATCH /appointments/{id}
	adminGroup.Delete("/:id", appointmentHandler.DeleteAppointment) // DELETE /appointments/{id}
}
