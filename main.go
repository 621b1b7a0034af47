package main

import (
	"os"
	"os/signal"
	"syscall"

	"klinik.link/configs"
	"klinik.link/configs/configsdatabase"
	"klinik.link/configs/configslog"
	"klinik.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.Load()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName: "Diş Kliniği",
		Views:   engine,
	})

	app.Static("/assets", "./public/assets")
	routes.SetupRoutes(app)

	// Graceful shutdown: sinyal gelince dinlemeyi bırak, açık istekleri bitir.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		_ = app.Shutdown()
	}()

	addr := ":" + configs.GetEnv("APP_PORT", "3000")
	configslog.SLog.Infof("Sunucu %s adresinde dinliyor", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
