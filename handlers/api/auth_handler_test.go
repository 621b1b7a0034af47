package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginWithDefaultCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, http.MethodPost, "/admin/auth", map[string]string{
		"username": "admin", "password": "admin",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Giriş başarılı", payload["message"])
	assert.NotEmpty(t, resp.Header.Get("Set-Cookie"))
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	app := newTestApp(t)

	cases := []map[string]string{
		{"username": "admin", "password": "yanlis"},
		{"username": "baskasi", "password": "admin"},
		{"username": "", "password": ""},
	}
	for _, body := range cases {
		resp, payload := doJSON(t, app, http.MethodPost, "/admin/auth", body, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Kullanıcı adı veya şifre hatalı", payload["error"])
	}
}

func TestLoginWithEnvironmentOverride(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "klinik")
	t.Setenv("ADMIN_PASSWORD", "cok-gizli")
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/admin/auth", map[string]string{
		"username": "admin", "password": "admin",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/admin/auth", map[string]string{
		"username": "klinik", "password": "cok-gizli",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWithBcryptHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sifre123"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD", string(hash))
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/admin/auth", map[string]string{
		"username": "admin", "password": "sifre123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Hash'in kendisi parola olarak kabul edilmez.
	resp, _ = doJSON(t, app, http.MethodPost, "/admin/auth", map[string]string{
		"username": "admin", "password": string(hash),
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app := newTestApp(t)
	cookie := adminLogin(t, app)

	resp, _ := doJSON(t, app, http.MethodPost, "/admin/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, created := doJSON(t, app, http.MethodPost, "/appointments", bookingPayload(), "")
	id := created["appointment"].(map[string]any)["id"].(string)

	resp, _ = doJSON(t, app, http.MethodPatch, "/appointments/"+id, map[string]any{
		"status": "confirmed",
	}, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
