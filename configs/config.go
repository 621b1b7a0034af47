package configs

import (
	"os"

	"klinik.link/configs/configslog"

	"github.com/joho/godotenv"
)

// Load .env dosyasını okur. Dosya yoksa sessizce devam edilir;
// konteyner ortamlarında değişkenler doğrudan verilir.
func Load() {
	if err := godotenv.Load(); err != nil {
		if configslog.SLog != nil {
			configslog.SLog.Debug(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
		}
	}
}

// GetEnv ortam değişkenini okur, boşsa verilen varsayılanı döndürür.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// AdminUsername yönetim paneli kullanıcı adı.
func AdminUsername() string {
	return GetEnv("ADMIN_USERNAME", "admin")
}

// AdminPassword yönetim paneli parolası. Düz metin olabileceği gibi
// bcrypt hash'i de ("$2" öneki) verilebilir.
func AdminPassword() string {
	return GetEnv("ADMIN_PASSWORD", "admin")
}
