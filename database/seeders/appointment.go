package seeders

import (
	"time"

	"klinik.link/configs/configslog"
	"klinik.link/models"
	"klinik.link/pkg/dateparse"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAppointments geliştirme ortamı için örnek randevular ekler.
// Tablo boş değilse hiçbir şey yapılmaz.
func SeedAppointments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Appointment{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Randevu sayısı kontrol edilemedi", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Randevu tablosu dolu, seed atlanıyor.")
		return nil
	}

	tomorrow := dateparse.Normalize(time.Now().AddDate(0, 0, 1))
	email := "ayse.kaya@example.com"
	samples := []models.Appointment{
		{
			Name:    "Ayşe Kaya",
			Phone:   "+90 532 000 00 01",
			Email:   &email,
			Doctor:  models.Doctors[0].Name,
			Service: "Genel Kontrol",
			Date:    tomorrow,
			Time:    "09:00",
			Status:  models.StatusConfirmed,
		},
		{
			Name:    "Murat Aslan",
			Phone:   "+90 532 000 00 02",
			Doctor:  models.Doctors[1].Name,
			Service: "Kanal Tedavisi",
			Date:    tomorrow,
			Time:    "14:30",
			Status:  models.StatusPending,
		},
	}

	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			configslog.Log.Error("Örnek randevu oluşturulamadı",
				zap.String("name", samples[i].Name), zap.Error(err))
			return err
		}
	}

	configslog.SLog.Infof("%d örnek randevu seed edildi.", len(samples))
	return nil
}
