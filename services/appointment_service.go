package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"klinik.link/configs/configslog"
	"klinik.link/models"
	"klinik.link/pkg/dateparse"
	"klinik.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppointmentServiceError özel servis hataları.
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrAppointmentNotFound AppointmentServiceError = "randevu bulunamadı"
	ErrInvalidTimeSlot     AppointmentServiceError = "geçersiz randevu saati"
	ErrStorage             AppointmentServiceError = "veritabanı işlemi sırasında hata oluştu"
)

// ErrInvalidDate pkg/dateparse'tan yeniden dışa verilir; handler'lar tek
// paketten kontrol edebilsin diye.
var ErrInvalidDate = dateparse.ErrInvalidDate

// MissingFieldsError zorunlu rezervasyon alanlarının eksikliğini, eksik alan
// adlarıyla birlikte taşır.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "eksik bilgi: " + strings.Join(e.Fields, ", ")
}

// SlotTakenError dolu bir saate yapılan rezervasyon denemesini, hastaya
// önerilecek alternatif saatlerle birlikte taşır.
type SlotTakenError struct {
	AvailableTimes []string
}

func (e *SlotTakenError) Error() string {
	return "bu tarih ve saatte seçilen doktorun randevusu dolu"
}

// BookingRequest yeni randevu girdisi. Date ham dizgi olarak gelir ve üç
// biçimden biri kabul edilir (bkz. pkg/dateparse).
type BookingRequest struct {
	Name    string
	Phone   string
	Email   string
	Doctor  string
	Service string
	Date    string
	Time    string
	Notes   string
}

// AppointmentUpdate kısmi güncelleme: nil alanlar dokunulmadan bırakılır.
type AppointmentUpdate struct {
	Status *string
	Date   *string
	Time   *string
	Notes  *string
}

// IAppointmentService randevu işlemleri için arayüz.
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	GetAvailableTimes(ctx context.Context, doctor, date string) ([]string, error)
	ListAppointments(ctx context.Context, status, date string) ([]models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, updates AppointmentUpdate) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// AppointmentService IAppointmentService arayüzünü uygular.
type AppointmentService struct {
	repo repositories.IAppointmentRepository
}

// NewAppointmentService global veritabanı bağlantısıyla servis oluşturur.
func NewAppointmentService() IAppointmentService {
	return &AppointmentService{repo: repositories.NewAppointmentRepository()}
}

// NewAppointmentServiceWithRepo verilen repository ile servis oluşturur.
func NewAppointmentServiceWithRepo(repo repositories.IAppointmentRepository) IAppointmentService {
	return &AppointmentService{repo: repo}
}

// CreateAppointment yeni randevu oluşturur veya reddeder.
//
// Çakışma kontrolü iki katmanlıdır: önce okuma ile bakılır ki hastaya
// alternatif saatler önerilebilsin; eşzamanlı iki istek bu kontrolü aynı anda
// geçse bile veritabanındaki kısmi unique index ikinci insert'i
// gorm.ErrDuplicatedKey ile düşürür ve o da SlotTakenError'a çevrilir.
func (s *AppointmentService) CreateAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	date, err := dateparse.Parse(req.Date)
	if err != nil {
		return nil, err
	}
	if !models.IsValidTimeSlot(req.Time) {
		return nil, ErrInvalidTimeSlot
	}

	_, err = s.repo.FindConflict(ctx, req.Doctor, date, req.Time)
	if err == nil {
		return nil, s.slotTaken(ctx, req.Doctor, date)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	appointment := &models.Appointment{
		Name:    req.Name,
		Phone:   req.Phone,
		Doctor:  req.Doctor,
		Service: req.Service,
		Date:    date,
		Time:    req.Time,
		Status:  models.StatusPending,
	}
	if req.Email != "" {
		appointment.Email = &req.Email
	}
	if req.Notes != "" {
		appointment.Notes = &req.Notes
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Ön kontrol ile insert arasında başka bir istek aynı saati kaptı.
			return nil, s.slotTaken(ctx, req.Doctor, date)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	configslog.SLog.Infof("Randevu oluşturuldu: %s, %s %s (%s)",
		appointment.Doctor, req.Date, appointment.Time, appointment.ConfirmationCode())
	return appointment, nil
}

// slotTaken mevcut müsait saatleri hesaplayıp SlotTakenError üretir.
func (s *AppointmentService) slotTaken(ctx context.Context, doctor string, date time.Time) error {
	available, err := s.availableTimes(ctx, doctor, date)
	if err != nil {
		configslog.Log.Error("Alternatif saatler hesaplanamadı",
			zap.String("doctor", doctor), zap.Error(err))
		available = nil
	}
	return &SlotTakenError{AvailableTimes: available}
}

// GetAvailableTimes hekimin o gün boş olan saatlerini sabit liste sırasıyla
// döndürür.
func (s *AppointmentService) GetAvailableTimes(ctx context.Context, doctor, date string) ([]string, error) {
	day, err := dateparse.Parse(date)
	if err != nil {
		return nil, err
	}
	return s.availableTimes(ctx, doctor, day)
}

func (s *AppointmentService) availableTimes(ctx context.Context, doctor string, date time.Time) ([]string, error) {
	booked, err := s.repo.FindBookedTimes(ctx, doctor, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t] = struct{}{}
	}

	available := make([]string, 0, len(models.TimeSlots))
	for _, slot := range models.TimeSlots {
		if _, taken := bookedSet[slot]; !taken {
			available = append(available, slot)
		}
	}
	return available, nil
}

// ListAppointments randevuları opsiyonel durum ve gün filtresiyle listeler.
func (s *AppointmentService) ListAppointments(ctx context.Context, status, date string) ([]models.Appointment, error) {
	filter := repositories.AppointmentFilter{Status: status}
	if date != "" {
		day, err := dateparse.Parse(date)
		if err != nil {
			return nil, err
		}
		filter.Date = &day
	}

	appointments, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return appointments, nil
}

// GetAppointmentByID tek bir randevuyu getirir.
func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return appointment, nil
}

// UpdateAppointment durum, tarih, saat ve not alanlarını kısmi olarak
// günceller. Dolu bir saate taşıma denemesi unique index'e takılır ve
// SlotTakenError olarak döner.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id string, updates AppointmentUpdate) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if updates.Status != nil && *updates.Status != "" {
		appointment.Status = *updates.Status
	}
	if updates.Date != nil && *updates.Date != "" {
		day, err := dateparse.Parse(*updates.Date)
		if err != nil {
			return nil, err
		}
		appointment.Date = day
	}
	if updates.Time != nil && *updates.Time != "" {
		if !models.IsValidTimeSlot(*updates.Time) {
			return nil, ErrInvalidTimeSlot
		}
		appointment.Time = *updates.Time
	}
	if updates.Notes != nil {
		appointment.Notes = updates.Notes
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.slotTaken(ctx, appointment.Doctor, appointment.Date)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	configslog.SLog.Infof("Randevu güncellendi: %s", id)
	return appointment, nil
}

// DeleteAppointment randevuyu kalıcı olarak siler.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	configslog.SLog.Infof("Randevu silindi: %s", id)
	return nil
}

// validateBookingRequest zorunlu alanları kontrol eder; eksik olanların
// adlarını orijinal (hastaya okunan) Türkçe adlarıyla toplar.
func validateBookingRequest(req BookingRequest) error {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "ad-soyad")
	}
	if req.Phone == "" {
		missing = append(missing, "telefon")
	}
	if req.Doctor == "" {
		missing = append(missing, "doktor")
	}
	if req.Service == "" {
		missing = append(missing, "tedavi")
	}
	if req.Date == "" {
		missing = append(missing, "tarih")
	}
	if req.Time == "" {
		missing = append(missing, "saat")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

var _ IAppointmentService = (*AppointmentService)(nil)
