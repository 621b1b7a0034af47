package dateparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate çözümlemeyen veya takvimde karşılığı olmayan tarih girdisi.
var ErrInvalidDate = errors.New("geçersiz tarih formatı")

// Parse bir tarih dizgisini naif takvim gününe çevirir. Üç biçim kabul edilir:
// ISO ("2025-06-01"), gün/ay/yıl ("01/06/2025") ve gün.ay.yıl ("01.06.2025").
// Sonuç her zaman UTC gece yarısına sabitlenir; saat dilimi modellenmez.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	var sep string
	switch {
	case strings.Contains(s, "/"):
		sep = "/"
	case strings.Contains(s, "."):
		sep = "."
	default:
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return Normalize(t), nil
		}
		// Sesli asistan bazen tam timestamp gönderir; günü alıp gerisini at.
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return Normalize(t), nil
		}
		return time.Time{}, ErrInvalidDate
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDate
	}
	day, errDay := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, errMonth := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, errYear := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errDay != nil || errMonth != nil || errYear != nil {
		return time.Time{}, ErrInvalidDate
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date taşan değerleri bir sonraki aya devreder; 31.02.2025 gibi
	// girdiler geri okunduğunda aynı güne denk gelmez ve reddedilir.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Normalize verilen zamanı UTC gece yarısındaki takvim gününe indirger.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var (
	turkishMonths = [...]string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	}
	turkishDays = [...]string{
		"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
	}
)

// FormatTurkish "10 Haziran 2025 Salı" biçiminde uzun tarih üretir.
// Randevu onay mesajlarında kullanılır.
func FormatTurkish(t time.Time) string {
	return fmt.Sprintf("%d %s %d %s",
		t.Day(), turkishMonths[t.Month()-1], t.Year(), turkishDays[t.Weekday()])
}
