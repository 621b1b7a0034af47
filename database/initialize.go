package database

import (
	"klinik.link/configs/configslog"
	"klinik.link/database/migrations"
	"klinik.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed işlemlerini tek transaction içinde çalıştırır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			if err := migrations.MigrateAppointmentsTable(tx); err != nil {
				return err
			}
		}
		if seed {
			if err := seeders.SeedAppointments(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu", zap.Error(err))
	}
}
