package repositories

import (
	"context"
	"errors"
	"time"

	"klinik.link/configs/configsdatabase"
	"klinik.link/configs/configslog"
	"klinik.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound aranan kayıt veritabanında yoksa döner.
var ErrNotFound = errors.New("kayıt bulunamadı")

// AppointmentFilter liste sorguları için opsiyonel filtreler.
// Date verildiğinde o günün 24 saatlik penceresi eşleştirilir.
type AppointmentFilter struct {
	Status string
	Date   *time.Time
}

// IAppointmentRepository randevu veritabanı işlemleri için arayüz.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindAll(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	FindConflict(ctx context.Context, doctor string, date time.Time, timeSlot string) (*models.Appointment, error)
	FindBookedTimes(ctx context.Context, doctor string, date time.Time) ([]string, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository IAppointmentRepository arayüzünü uygular.
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository global bağlantıyla çalışan repository oluşturur.
func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configsdatabase.GetDB()}
}

// NewAppointmentRepositoryWithDB verilen bağlantıyla çalışan repository
// oluşturur. Testler ve transaction'lar için.
func NewAppointmentRepositoryWithDB(db *gorm.DB) IAppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir randevu kaydı ekler. (doctor, date, time) üçlüsündeki kısmi
// unique index ihlali gorm.ErrDuplicatedKey olarak geri döner; çağıran bunu
// dolu saat olarak yorumlamalıdır.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil {
		return errors.New("boş randevu kaydı oluşturulamaz")
	}
	err := r.getDB(ctx).Create(appointment).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		configslog.Log.Error("AppointmentRepository.Create: DB error", zap.Error(err))
	}
	return err
}

// FindByID belirli bir randevuyu getirir.
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var appointment models.Appointment
	err := r.getDB(ctx).First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindAll randevuları tarih ve saat sırasıyla listeler.
func (r *AppointmentRepository) FindAll(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	query := r.getDB(ctx).Model(&models.Appointment{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != nil {
		dayStart := *filter.Date
		dayEnd := dayStart.AddDate(0, 0, 1)
		query = query.Where("date >= ? AND date < ?", dayStart, dayEnd)
	}

	var appointments []models.Appointment
	err := query.Order("date asc").Order("time asc").Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindConflict aynı hekim, gün ve saatte cancelled olmayan kaydı arar.
// Çakışma yoksa ErrNotFound döner.
func (r *AppointmentRepository) FindConflict(ctx context.Context, doctor string, date time.Time, timeSlot string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.getDB(ctx).
		Where("doctor = ? AND date = ? AND time = ? AND status <> ?", doctor, date, timeSlot, models.StatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindConflict: DB error",
			zap.String("doctor", doctor), zap.String("time", timeSlot), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindBookedTimes hekimin o gün dolu olan saatlerini döndürür.
func (r *AppointmentRepository) FindBookedTimes(ctx context.Context, doctor string, date time.Time) ([]string, error) {
	var times []string
	err := r.getDB(ctx).Model(&models.Appointment{}).
		Where("doctor = ? AND date = ? AND status <> ?", doctor, date, models.StatusCancelled).
		Pluck("time", &times).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindBookedTimes: DB error",
			zap.String("doctor", doctor), zap.Error(err))
		return nil, err
	}
	return times, nil
}

// Update kaydı Save ile bütün olarak yazar.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == "" {
		return errors.New("güncellenecek randevu geçerli değil")
	}
	err := r.getDB(ctx).Save(appointment).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		configslog.Log.Error("AppointmentRepository.Update: DB error", zap.String("id", appointment.ID), zap.Error(err))
	}
	return err
}

// Delete kaydı kalıcı olarak siler. Kayıt yoksa ErrNotFound döner.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	result := r.getDB(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.Delete: DB error", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
