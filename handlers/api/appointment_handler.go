package handlers

import (
	"errors"

	"klinik.link/configs/configslog"
	"klinik.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AppointmentHandler randevu API uçları için handler.
type AppointmentHandler struct {
	service services.IAppointmentService
}

// NewAppointmentHandler global servislerle handler oluşturur.
func NewAppointmentHandler() *AppointmentHandler {
	return &AppointmentHandler{service: services.NewAppointmentService()}
}

// NewAppointmentHandlerWithService verilen servisle handler oluşturur.
func NewAppointmentHandlerWithService(service services.IAppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// bookingBody POST /appointments gövdesi.
type bookingBody struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Doctor  string `json:"doctor"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

// updateBody PATCH /appointments/:id gövdesi; nil alanlar değiştirilmez.
type updateBody struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Notes  *string `json:"notes"`
}

// ListAppointments GET /appointments?status=&date=
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	status := c.Query("status")
	date := c.Query("date")

	appointments, err := h.service.ListAppointments(c.UserContext(), status, date)
	if err != nil {
		return respondServiceError(c, err, "Randevular alınırken bir hata oluştu")
	}
	return c.JSON(fiber.Map{"success": true, "appointments": appointments})
}

// CreateAppointment POST /appointments
func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var body bookingBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Geçersiz istek gövdesi",
		})
	}

	appointment, err := h.service.CreateAppointment(c.UserContext(), services.BookingRequest{
		Name:    body.Name,
		Phone:   body.Phone,
		Email:   body.Email,
		Doctor:  body.Doctor,
		Service: body.Service,
		Date:    body.Date,
		Time:    body.Time,
		Notes:   body.Notes,
	})
	if err != nil {
		var missing *services.MissingFieldsError
		if errors.As(err, &missing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":       false,
				"error":         "Lütfen tüm zorunlu alanları doldurun",
				"missingFields": missing.Fields,
			})
		}
		var taken *services.SlotTakenError
		if errors.As(err, &taken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success":        false,
				"error":          "Bu tarih ve saatte seçilen doktorun randevusu dolu",
				"availableTimes": taken.AvailableTimes,
			})
		}
		return respondServiceError(c, err, "Randevu oluşturulurken bir hata oluştu")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":          true,
		"message":          "Randevunuz başarıyla oluşturuldu!",
		"appointment":      appointment,
		"confirmationCode": appointment.ConfirmationCode(),
	})
}

// GetAppointment GET /appointments/:id
func (h *AppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	appointment, err := h.service.GetAppointmentByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Randevu alınırken bir hata oluştu")
	}
	return c.JSON(fiber.Map{"success": true, "appointment": appointment})
}

// UpdateAppointment PATCH /appointments/:id
func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	var body updateBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Geçersiz istek gövdesi",
		})
	}

	appointment, err := h.service.UpdateAppointment(c.UserContext(), c.Params("id"), services.AppointmentUpdate{
		Status: body.Status,
		Date:   body.Date,
		Time:   body.Time,
		Notes:  body.Notes,
	})
	if err != nil {
		var taken *services.SlotTakenError
		if errors.As(err, &taken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success":        false,
				"error":          "Bu tarih ve saatte seçilen doktorun randevusu dolu",
				"availableTimes": taken.AvailableTimes,
			})
		}
		return respondServiceError(c, err, "Randevu güncellenirken bir hata oluştu")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Randevu başarıyla güncellendi",
		"appointment": appointment,
	})
}

// DeleteAppointment DELETE /appointments/:id
func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	if err := h.service.DeleteAppointment(c.UserContext(), c.Params("id")); err != nil {
		return respondServiceError(c, err, "Randevu silinirken bir hata oluştu")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Randevu başarıyla silindi"})
}

// respondServiceError servis hatalarını ortak HTTP yanıtlarına çevirir.
// Özel yük taşıyan hatalar (eksik alanlar, dolu saat) çağıran handler'da
// ayrıca ele alınır.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrAppointmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "Randevu bulunamadı",
		})
	case errors.Is(err, services.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Geçersiz tarih formatı",
		})
	case errors.Is(err, services.ErrInvalidTimeSlot):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Geçersiz randevu saati",
		})
	default:
		configslog.Log.Error("API isteği başarısız",
			zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": fallback,
		})
	}
}
