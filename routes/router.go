package routes

import (
	"klinik.link/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(sessionLocals())

	registerWebRoutes(app)
	registerAppointmentRoutes(app)
	registerAuthRoutes(app)
	registerVapiRoutes(app)

	app.Use(notFoundHandler)
}

// sessionLocals oturum store'unu her isteğin locals'ına koyar; handler ve
// middleware'ler oturuma utils üzerinden erişir.
func sessionLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false, "error": "Kaynak bulunamadı",
	})
}
