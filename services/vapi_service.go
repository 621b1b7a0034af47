package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"klinik.link/configs/configslog"
	"klinik.link/models"
	"klinik.link/pkg/dateparse"

	"go.uber.org/zap"
)

// Sesli asistan entegrasyonunun tanıdığı araç adları.
const (
	ToolBookAppointment   = "book_appointment"
	ToolGetAvailableTimes = "get_available_times"
	ToolGetDoctors        = "get_doctors"
	ToolGetServices       = "get_services"
)

// ToolCall çözümlenmiş tek bir araç çağrısı. Ham JSON gövdesi bir kez bu
// kapalı tip kümesine çevrilir; rezervasyon mantığı hiçbir zaman map görmez.
type ToolCall interface {
	CallID() string
}

// BookAppointmentCall randevu oluşturma çağrısı.
type BookAppointmentCall struct {
	ID      string
	Request BookingRequest
}

// AvailableTimesCall müsait saat sorgusu.
type AvailableTimesCall struct {
	ID     string
	Doctor string
	Date   string
}

// DoctorsCall sabit hekim listesi sorgusu.
type DoctorsCall struct{ ID string }

// ServicesCall sabit tedavi listesi sorgusu.
type ServicesCall struct{ ID string }

// UnknownToolCall tanınmayan araç adı.
type UnknownToolCall struct {
	ID   string
	Name string
}

func (c BookAppointmentCall) CallID() string { return c.ID }
func (c AvailableTimesCall) CallID() string { return c.ID }
func (c DoctorsCall) CallID() string { return c.ID }
func (c ServicesCall) CallID() string { return c.ID }
func (c UnknownToolCall) CallID() string { return c.ID }

// ToolResult tek bir araç çağrısının sonucu. Result alanı tüketen platformun
// beklediği gibi serileştirilmiş metindir, yapılandırılmış nesne değildir.
type ToolResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result"`
}

// ToolCallResponse modern biçimdeki isteklerin yanıt zarfı.
type ToolCallResponse struct {
	Results []ToolResult `json:"results"`
}

// ClinicInfo GET /vapi yanıtı: sabit listeler ve istenirse müsait saatler.
type ClinicInfo struct {
	Success        bool            `json:"success"`
	Doctors        []models.Doctor `json:"doctors"`
	Services       []string        `json:"services"`
	AvailableTimes []string        `json:"availableTimes,omitempty"`
	WorkingHours   string          `json:"workingHours"`
}

// toolArgs araç çağrılarının ortak anahtar-değer yükü.
type toolArgs struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Doctor  string `json:"doctor"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

func (a toolArgs) bookingRequest() BookingRequest {
	return BookingRequest{
		Name:    a.Name,
		Phone:   a.Phone,
		Email:   a.Email,
		Doctor:  a.Doctor,
		Service: a.Service,
		Date:    a.Date,
		Time:    a.Time,
		Notes:   a.Notes,
	}
}

// vapiEnvelope gelen gövdenin hem modern hem eski biçimini kapsar.
type vapiEnvelope struct {
	Message *struct {
		Type      string `json:"type"`
		ToolCalls []struct {
			ID       string `json:"id"`
			Function struct {
				Name      string   `json:"name"`
				Arguments toolArgs `json:"arguments"`
			} `json:"function"`
		} `json:"toolCalls"`
	} `json:"message"`

	// Eski entegrasyon sözleşmesi: tek functionCall nesnesi veya düz alanlar.
	FunctionCall *struct {
		Name       string   `json:"name"`
		Parameters toolArgs `json:"parameters"`
	} `json:"functionCall"`
	toolArgs
}

// IVapiService sesli asistan webhook işlemleri için arayüz.
type IVapiService interface {
	HandleWebhook(ctx context.Context, body []byte) (any, error)
	GetClinicInfo(ctx context.Context, doctor, date string) (*ClinicInfo, error)
}

// VapiService araç çağrılarını randevu servisine yönlendirir.
type VapiService struct {
	appointments IAppointmentService
}

// NewVapiService global bağlantıyla çalışan dispatcher oluşturur.
func NewVapiService() IVapiService {
	return &VapiService{appointments: NewAppointmentService()}
}

// NewVapiServiceWithAppointments verilen randevu servisiyle dispatcher
// oluşturur. Testler için.
func NewVapiServiceWithAppointments(appointments IAppointmentService) IVapiService {
	return &VapiService{appointments: appointments}
}

// HandleWebhook POST /vapi gövdesini çözümler ve sonucu döndürür. Modern
// tool-calls zarfı ToolCallResponse üretir; eski biçimler doğrudan rezervasyon
// sonucu, hiçbiri eşleşmezse hazır-olma mesajı döner.
func (s *VapiService) HandleWebhook(ctx context.Context, body []byte) (any, error) {
	var env vapiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("geçersiz istek gövdesi: %w", err)
	}

	if env.Message != nil && env.Message.Type == "tool-calls" {
		results := make([]ToolResult, 0, len(env.Message.ToolCalls))
		for _, raw := range env.Message.ToolCalls {
			call := parseToolCall(raw.ID, raw.Function.Name, raw.Function.Arguments)
			results = append(results, s.dispatch(ctx, call))
		}
		return &ToolCallResponse{Results: results}, nil
	}

	if env.FunctionCall != nil && env.FunctionCall.Name == ToolBookAppointment {
		return s.bookResult(ctx, env.FunctionCall.Parameters.bookingRequest()), nil
	}

	// Düz alanlarla gelen eski rezervasyon isteği.
	bare := env.toolArgs
	if bare.Name != "" && bare.Phone != "" && bare.Doctor != "" &&
		bare.Service != "" && bare.Date != "" && bare.Time != "" {
		return s.bookResult(ctx, bare.bookingRequest()), nil
	}

	return map[string]any{
		"success":  true,
		"message":  "Diş kliniği randevu sistemi hazır.",
		"doctors":  models.DoctorNames(),
		"services": models.Services,
	}, nil
}

// parseToolCall ham araç adını ve argümanları etiketli varyanta çevirir.
func parseToolCall(id, name string, args toolArgs) ToolCall {
	switch name {
	case ToolBookAppointment:
		return BookAppointmentCall{ID: id, Request: args.bookingRequest()}
	case ToolGetAvailableTimes:
		return AvailableTimesCall{ID: id, Doctor: args.Doctor, Date: args.Date}
	case ToolGetDoctors:
		return DoctorsCall{ID: id}
	case ToolGetServices:
		return ServicesCall{ID: id}
	default:
		return UnknownToolCall{ID: id, Name: name}
	}
}

// dispatch tek bir araç çağrısını çalıştırır ve metin sonucunu üretir.
func (s *VapiService) dispatch(ctx context.Context, call ToolCall) ToolResult {
	var payload any
	switch c := call.(type) {
	case BookAppointmentCall:
		payload = s.bookResult(ctx, c.Request)
	case AvailableTimesCall:
		payload = s.availableTimesResult(ctx, c.Doctor, c.Date)
	case DoctorsCall:
		payload = map[string]any{"doctors": models.Doctors}
	case ServicesCall:
		payload = map[string]any{"services": models.Services}
	case UnknownToolCall:
		configslog.SLog.Warnf("Bilinmeyen araç çağrısı: %s", c.Name)
		payload = map[string]any{"success": false, "error": "bilinmeyen araç: " + c.Name}
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		configslog.Log.Error("Araç sonucu serileştirilemedi", zap.Error(err))
		encoded = []byte(`{"success":false,"error":"sonuç hazırlanamadı"}`)
	}
	return ToolResult{ToolCallID: call.CallID(), Result: string(encoded)}
}

// bookResult randevu oluşturmayı dener ve asistanın hastaya okuyacağı yanıtı
// kurar. Hatalar HTTP durum koduna değil success alanına yansır; telefon
// görüşmesi sürerken asistanın konuşmaya devam edebilmesi gerekir.
func (s *VapiService) bookResult(ctx context.Context, req BookingRequest) map[string]any {
	appointment, err := s.appointments.CreateAppointment(ctx, req)
	if err != nil {
		var missing *MissingFieldsError
		var taken *SlotTakenError
		switch {
		case errors.As(err, &missing):
			return map[string]any{
				"success":       false,
				"error":         "Eksik bilgi: " + strings.Join(missing.Fields, ", "),
				"missingFields": missing.Fields,
			}
		case errors.Is(err, ErrInvalidDate):
			return map[string]any{"success": false, "error": "Geçersiz tarih formatı"}
		case errors.Is(err, ErrInvalidTimeSlot):
			return map[string]any{"success": false, "error": "Geçersiz randevu saati"}
		case errors.As(err, &taken):
			// Telefonda tüm listeyi okumak yerine ilk 5 öneri verilir.
			suggested := taken.AvailableTimes
			if len(suggested) > 5 {
				suggested = suggested[:5]
			}
			return map[string]any{
				"success":        false,
				"error":          "Bu saat dolu. Müsait saatler: " + strings.Join(suggested, ", "),
				"availableTimes": taken.AvailableTimes,
			}
		default:
			configslog.Log.Error("Sesli asistan rezervasyonu başarısız", zap.Error(err))
			return map[string]any{"success": false, "error": "Randevu işlenirken bir hata oluştu"}
		}
	}

	formattedDate := dateparse.FormatTurkish(appointment.Date)
	code := appointment.ConfirmationCode()
	return map[string]any{
		"success": true,
		"message": fmt.Sprintf(
			"Randevunuz oluşturuldu! %s adına %s ile %s saat %s'de %s randevusu onaylandı. Randevu No: %s",
			appointment.Name, appointment.Doctor, formattedDate, appointment.Time, appointment.Service, code),
		"appointment": map[string]any{
			"id":               appointment.ID,
			"confirmationCode": code,
			"name":             appointment.Name,
			"phone":            appointment.Phone,
			"doctor":           appointment.Doctor,
			"service":          appointment.Service,
			"date":             formattedDate,
			"time":             appointment.Time,
		},
	}
}

// availableTimesResult müsait saat sorgusunun asistan yanıtını kurar.
func (s *VapiService) availableTimesResult(ctx context.Context, doctor, date string) map[string]any {
	times, err := s.appointments.GetAvailableTimes(ctx, doctor, date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			return map[string]any{"success": false, "error": "Geçersiz tarih formatı"}
		}
		configslog.Log.Error("Müsait saatler alınamadı", zap.String("doctor", doctor), zap.Error(err))
		return map[string]any{"success": false, "error": "Müsait saatler alınırken hata oluştu"}
	}

	message := doctor + " için bu tarihte müsait saat yok."
	if len(times) > 0 {
		message = doctor + " için müsait saatler: " + strings.Join(times, ", ")
	}
	return map[string]any{
		"success":        true,
		"doctor":         doctor,
		"date":           date,
		"availableTimes": times,
		"message":        message,
	}
}

// GetClinicInfo sabit hekim/tedavi listelerini, doctor ve date verilmişse o
// güne ait müsait saatleri döndürür.
func (s *VapiService) GetClinicInfo(ctx context.Context, doctor, date string) (*ClinicInfo, error) {
	info := &ClinicInfo{
		Success:      true,
		Doctors:      models.Doctors,
		Services:     models.Services,
		WorkingHours: models.WorkingHours,
	}

	if doctor != "" && date != "" {
		times, err := s.appointments.GetAvailableTimes(ctx, doctor, date)
		if err != nil {
			return nil, err
		}
		info.AvailableTimes = times
	}
	return info, nil
}

var _ IVapiService = (*VapiService)(nil)
