package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Randevu durumları. Yeni kayıtlar pending olarak açılır; confirmed ve
// cancelled'a geçiş yalnızca yönetici güncellemesiyle olur.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment bir hastanın aldığı tek randevu kaydıdır.
// (doctor, date, time) üçlüsü cancelled olmayan kayıtlar arasında tekildir;
// bu kural veritabanındaki kısmi unique index ile garanti edilir.
type Appointment struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email     *string   `gorm:"type:varchar(200)" json:"email"`
	Doctor    string    `gorm:"type:varchar(100);not null;index" json:"doctor"`
	Service   string    `gorm:"type:varchar(100);not null" json:"service"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null" json:"time"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate eksikse kimlik ve varsayılan durumu atar.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// ConfirmationCode hastaya okunan randevu numarası:
// kimliğin son 6 karakteri, büyük harfe çevrilmiş.
func (a *Appointment) ConfirmationCode() string {
	id := a.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}
