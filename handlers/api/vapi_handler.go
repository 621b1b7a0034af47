package handlers

import (
	"errors"

	"klinik.link/configs/configslog"
	"klinik.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VapiHandler sesli asistan webhook uçları için handler.
type VapiHandler struct {
	service services.IVapiService
}

// NewVapiHandler global servislerle handler oluşturur.
func NewVapiHandler() *VapiHandler {
	return &VapiHandler{service: services.NewVapiService()}
}

// NewVapiHandlerWithService verilen servisle handler oluşturur.
func NewVapiHandlerWithService(service services.IVapiService) *VapiHandler {
	return &VapiHandler{service: service}
}

// HandleWebhook POST /vapi — araç çağrısı zarfını işler.
// Araç bazlı hatalar gövdedeki success alanına yansır; 500 yalnızca zarf
// hiç işlenemediğinde döner.
func (h *VapiHandler) HandleWebhook(c *fiber.Ctx) error {
	result, err := h.service.HandleWebhook(c.UserContext(), c.Body())
	if err != nil {
		configslog.Log.Error("Vapi isteği işlenemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Randevu işlenirken bir hata oluştu",
		})
	}
	return c.JSON(result)
}

// GetClinicInfo GET /vapi?doctor=&date= — sabit listeler ve iki parametre de
// verilmişse o güne ait müsait saatler.
func (h *VapiHandler) GetClinicInfo(c *fiber.Ctx) error {
	info, err := h.service.GetClinicInfo(c.UserContext(), c.Query("doctor"), c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false, "error": "Geçersiz tarih formatı",
			})
		}
		configslog.Log.Error("Klinik bilgileri alınamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Bilgiler alınırken bir hata oluştu",
		})
	}
	return c.JSON(info)
}
