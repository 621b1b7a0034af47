package handlers

import (
	"klinik.link/models"

	"github.com/gofiber/fiber/v2"
)

// SiteHandler tanıtım sayfaları için handler.
type SiteHandler struct{}

// NewSiteHandler yeni bir SiteHandler örneği oluşturur.
func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

// HomePage GET / — hekim kartları ve tedavi listesiyle ana sayfa.
// Listeler API ile aynı kaynaktan (models/clinic.go) gelir.
func (h *SiteHandler) HomePage(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title":        "Diş Kliniği",
		"Doctors":      models.Doctors,
		"Services":     models.Services,
		"TimeSlots":    models.TimeSlots,
		"WorkingHours": models.WorkingHours,
	}, "layouts/main")
}
