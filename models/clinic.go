package models

// Doctor klinikte çalışan bir hekimi tanımlar.
type Doctor struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Kliniğin sabit referans verileri. Hekimler, tedaviler ve randevu saatleri
// veritabanında tutulmaz; hem web sayfaları hem API hem de sesli asistan
// yanıtları aynı listeleri buradan okur.
var (
	Doctors = []Doctor{
		{Name: "Dr. Can Yılmaz", Specialty: "Pedodonti (Çocuk Diş Hekimliği)"},
		{Name: "Dr. Elif Demir", Specialty: "Ortodonti (Tel Tedavisi)"},
		{Name: "Dr. Mehmet Öz", Specialty: "Çene Cerrahisi"},
	}

	Services = []string{
		"İmplant",
		"Diş Beyazlatma",
		"Kanal Tedavisi",
		"Zirkonyum Kaplama",
		"Genel Kontrol",
		"Diş Çekimi",
		"Dolgu",
		"Diş Temizliği",
	}

	// TimeSlots randevu alınabilecek 13 sabit saat, saat sırasına göre.
	// Öğle arası (12:00-14:00) randevuya kapalıdır.
	TimeSlots = []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}
)

// WorkingHours tanıtım sayfasında ve sesli asistan bilgi yanıtında gösterilir.
const WorkingHours = "Pazartesi-Cumartesi: 09:00-17:30"

// IsValidTimeSlot verilen saatin sabit randevu saatlerinden biri olup
// olmadığını söyler.
func IsValidTimeSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// DoctorNames hekim adlarını sırayla döndürür.
func DoctorNames() []string {
	names := make([]string, 0, len(Doctors))
	for _, d := range Doctors {
		names = append(names, d.Name)
	}
	return names
}
