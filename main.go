package main

import (
	"os"
	"os/signal"
	"syscall"

	"anket.link/configs"
	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/jobs"
	"anket.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	if err := configsdatabase.InitDB(); err != nil {
		configslog.SLog.Fatalf("Veritabanı bağlantısı kurulamadı: %v", err)
	}
	defer configsdatabase.CloseDB()

	// Asenkron indeksleme kuyruğu HTTP sunucusundan önce ayağa kalkar.
	jobs.Setup()

	app := fiber.New(fiber.Config{
		AppName:               "anket.link API",
		DisableStartupMessage: true,
	})
	routes.SetupRoutes(app)

	// Graceful shutdown: önce HTTP sunucusu kapanır, sonra kuyruk boşaltılır.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	addr := configs.GetListenAddr()
	configslog.SLog.Infof("anket.link API %s adresinde dinliyor", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	jobs.Shutdown()
	configslog.SLog.Info("Sunucu durduruldu.")
}
