package handlers

import (
	"crypto/subtle"
	"strings"

	"klinik.link/configs"
	"klinik.link/configs/configslog"
	"klinik.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler yönetici girişi ve çıkışı için handler.
type AuthHandler struct{}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login POST /admin/auth — kimlik doğrulanırsa sunucu taraflı oturum açar.
// Yetki istemcide tutulan bir bayrak değil, cookie'ye bağlı oturumdur.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Geçersiz istek gövdesi",
		})
	}

	if !credentialsValid(body.Username, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false, "error": "Kullanıcı adı veya şifre hatalı",
		})
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Oturum başlatılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Giriş işlemi başarısız",
		})
	}
	sess.Set(utils.SessionKeyIsAdmin, true)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Oturum kaydedilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Giriş işlemi başarısız",
		})
	}

	configslog.SLog.Infof("Yönetici girişi yapıldı: %s", body.Username)
	return c.JSON(fiber.Map{"success": true, "message": "Giriş başarılı"})
}

// Logout POST /admin/logout — mevcut oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"success": true, "message": "Çıkış yapıldı"})
}

// credentialsValid kullanıcı adı ve parolayı ortam değerleriyle karşılaştırır.
// ADMIN_PASSWORD bcrypt hash'i içeriyorsa hash karşılaştırması yapılır,
// değilse sabit zamanlı düz karşılaştırma kullanılır.
func credentialsValid(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(configs.AdminUsername())) == 1

	expected := configs.AdminPassword()
	var passOK bool
	if strings.HasPrefix(expected, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(expected), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(expected)) == 1
	}
	return userOK && passOK
}
