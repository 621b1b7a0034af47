package migrations

import (
	"klinik.link/configs/configslog"
	"klinik.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Cancelled olmayan kayıtlar arasında (doctor, date, time) üçlüsünü tekil
// tutan kısmi unique index. Çakışma kontrolünün okuma tarafı yarışa açıktır;
// son söz bu index'indir.
const activeSlotIndexSQL = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
ON appointments (doctor, date, time)
WHERE status <> 'cancelled'`

func MigrateAppointmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating appointments table...")
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		configslog.Log.Error("Failed to migrate appointments table", zap.Error(err))
		return err
	}
	if err := db.Exec(activeSlotIndexSQL).Error; err != nil {
		configslog.Log.Error("Failed to create active slot index", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Appointments table migrated successfully")
	return nil
}
